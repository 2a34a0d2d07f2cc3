package rpcalloc

import (
	"fmt"
	"net"
	"net/rpc"

	"github.com/sachinsulkunte/segfit/safealloc"
)

// Server exposes a safealloc.Allocator as RPC methods.
type Server struct {
	pool *safealloc.Allocator
}

// NewServer creates a Server around a fresh, uninitialized allocator.
// Call Init (remotely, via the Init RPC method) before Allocate/Release.
func NewServer() *Server {
	s := &Server{pool: safealloc.New()}
	rpc.Register(s)
	return s
}

// Start listens on address and serves incoming RPC connections until
// the listener is closed.
func (s *Server) Start(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			return fmt.Errorf("failed to accept connection: %v", err)
		}
		go rpc.ServeConn(conn)
	}
}

// Init is the RPC method backing (*safealloc.Allocator).Init.
func (s *Server) Init(req *InitArgs, resp *InitReply) error {
	resp.OK = s.pool.Init(req.Sizes, req.Count)
	return nil
}

// Allocate is the RPC method backing (*safealloc.Allocator).Allocate.
func (s *Server) Allocate(req *AllocArgs, resp *AllocReply) error {
	addr, ok := s.pool.Allocate(req.N)
	resp.Addr = addr
	resp.OK = ok
	return nil
}

// Release is the RPC method backing (*safealloc.Allocator).Release.
func (s *Server) Release(req *ReleaseArgs, resp *ReleaseReply) error {
	s.pool.Release(req.Addr)
	return nil
}
