package transport

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/router"
	"go.uber.org/zap"
)

// acceptRetryDelay keeps a failing Accept from busy-looping; transient
// errors (EMFILE, ECONNABORTED) usually clear within this window.
const acceptRetryDelay = 100 * time.Millisecond

// Server owns the listener and drives the dispatch loop. The reference
// scheduling model is strictly sequential: one connection is read, dispatched
// and answered before the next accept. The router is read-only after startup,
// so switching to a goroutine per connection would only require the demo
// store's locking discipline, not changes to the dispatch core.
type Server struct {
	cfg    Config
	router *router.Router
	logger *zap.Logger
}

// NewServer creates a transport server around the given router.
func NewServer(cfg Config, r *router.Router, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, router: r, logger: logger}
}

// ListenAndServe accepts and handles connections until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.logger.Info("Server listening", zap.String("addr", s.cfg.Addr))
	return s.Serve(ctx, ln)
}

// Serve handles connections from an existing listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("Server shutting down")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				// Listener closed out from under us without a cancel
				return err
			}
			s.logger.Warn("Accept failed", zap.Error(err))
			time.Sleep(acceptRetryDelay)
			continue
		}
		s.handleConn(conn)
	}
}

// handleConn runs one full request/response cycle over the connection.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	if s.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			s.logger.Warn("Failed to set read deadline", zap.Error(err))
		}
	}

	req, err := ParseRequest(conn, s.cfg.MaxBodySize)
	if err != nil {
		s.logger.Warn("Failed to parse request",
			zap.Error(err),
			zap.String("remote_addr", conn.RemoteAddr().String()),
		)
		res := httpwire.NewResponse()
		if errors.Is(err, ErrBodyTooLarge) {
			res.SetJSON(httpwire.StatusBadRequest, `{"error": "Request body too large"}`)
		} else if errors.Is(err, ErrRequestTooLarge) {
			res.SetJSON(httpwire.StatusBadRequest, `{"error": "Request too large"}`)
		} else {
			res.SetJSON(httpwire.StatusBadRequest, `{"error": "Malformed request"}`)
		}
		if werr := WriteResponse(conn, res); werr != nil {
			s.logger.Warn("Failed to write error response", zap.Error(werr))
		}
		return
	}

	res := s.router.Handle(req)

	if err := WriteResponse(conn, res); err != nil {
		s.logger.Warn("Failed to write response",
			zap.Error(err),
			zap.String("remote_addr", conn.RemoteAddr().String()),
		)
	}
}
