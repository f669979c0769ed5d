package server

import (
	"errors"
	"net"
)

// Server owns the bound socket and the accept loop. Every accepted
// connection is handed to its own goroutine so one stalled client cannot
// block acceptance of the next.
type Server struct {
	config *Config
	slots  chan struct{} // nil when MaxConcurrent is 0
}

// New creates a Server with default config
func New() *Server {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Server with the given config
func NewWithConfig(config *Config) *Server {
	s := &Server{config: config}
	if config.MaxConcurrent > 0 {
		s.slots = make(chan struct{}, config.MaxConcurrent)
	}
	return s
}

// ListenAndServe binds addr and runs the accept loop. A bind failure is
// returned to the caller and is the only unrecoverable error in the server:
// without a listening socket the process has no purpose.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()
	return s.Serve(listener)
}

// Serve accepts connections forever. An individual accept failure is logged
// and the loop moves on; only a closed listener ends the loop.
func (s *Server) Serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			logError(listener.Addr().String(), "accept", err)
			continue
		}

		// With a concurrency cap, further connections queue in the
		// kernel accept backlog until a slot frees up.
		if s.slots != nil {
			s.slots <- struct{}{}
		}

		go func() {
			defer s.releaseSlot()
			s.handleConnection(conn)
		}()
	}
}

func (s *Server) releaseSlot() {
	if s.slots != nil {
		<-s.slots
	}
}
