package rpcalloc

import (
	"fmt"
	"net/rpc"
)

// Client is a thin net/rpc client for a remote pool allocator. Unlike
// a client fronting a variable-size allocator, it needs no
// address-to-size bookkeeping: Release only ever needs the address.
type Client struct {
	client *rpc.Client
}

// Dial connects to a Server listening at address.
func Dial(address string) (*Client, error) {
	c, err := rpc.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %v", err)
	}
	return &Client{client: c}, nil
}

// Init configures the pools on the remote server.
func (c *Client) Init(sizes []uint64, count int) (bool, error) {
	req := &InitArgs{Sizes: sizes, Count: count}
	resp := &InitReply{}
	if err := c.client.Call("Server.Init", req, resp); err != nil {
		return false, fmt.Errorf("RPC call failed: %v", err)
	}
	return resp.OK, nil
}

// Allocate requests a block of at least n bytes from the remote server.
func (c *Client) Allocate(n uint64) (uint64, bool, error) {
	req := &AllocArgs{N: n}
	resp := &AllocReply{}
	if err := c.client.Call("Server.Allocate", req, resp); err != nil {
		return 0, false, fmt.Errorf("RPC call failed: %v", err)
	}
	return resp.Addr, resp.OK, nil
}

// Release returns a previously allocated address to the remote server.
func (c *Client) Release(addr uint64) error {
	req := &ReleaseArgs{Addr: addr}
	resp := &ReleaseReply{}
	if err := c.client.Call("Server.Release", req, resp); err != nil {
		return fmt.Errorf("RPC call failed: %v", err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}
