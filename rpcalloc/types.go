// Package rpcalloc exposes a safealloc.Allocator over net/rpc. Because
// this allocator's addresses are offsets into a fixed backing region
// rather than live process pointers, the wire types need no
// address-to-size bookkeeping on the client: Release only ever needs
// the address.
package rpcalloc

// InitArgs configures the pools on the server.
type InitArgs struct {
	Sizes []uint64
	Count int
}

// InitReply reports whether Init succeeded.
type InitReply struct {
	OK bool
}

// AllocArgs requests a block of at least N bytes.
type AllocArgs struct {
	N uint64
}

// AllocReply carries the allocated address, or OK=false if no pool
// qualified.
type AllocReply struct {
	Addr uint64
	OK   bool
}

// ReleaseArgs returns a previously allocated address.
type ReleaseArgs struct {
	Addr uint64
}

// ReleaseReply is empty; Release has no reportable errors.
type ReleaseReply struct{}
