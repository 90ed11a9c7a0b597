// Package server is the transport shell around the simulation engine. Each
// WebSocket connection gets its own engine session; sessions share no
// state, and a slow or dropped client never stalls its simulation loop.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rustyeddy/simbot/sim"
)

const (
	writeTimeout  = 10 * time.Second
	sendQueueSize = 256
)

// SessionFactory builds a fresh engine session for one connection.
type SessionFactory func() (*sim.Session, error)

type Server struct {
	addr       string
	newSession SessionFactory
	logger     *zap.Logger
	upgrader   websocket.Upgrader
}

func New(addr string, factory SessionFactory, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		addr:       addr,
		newSession: factory,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ListenAndServe serves the dashboard and WebSocket stream until ctx is
// canceled, then shuts the HTTP server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)

	srv := &http.Server{Addr: s.addr, Handler: mux}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Info("dashboard listening", zap.String("addr", s.addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(dashboardHTML))
}

// handleWS upgrades the connection, creates an isolated engine session,
// and streams its events until the client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	session, err := s.newSession()
	if err != nil {
		s.logger.Error("session create failed", zap.Error(err))
		return
	}

	logger := s.logger.With(zap.String("session", session.ID()))
	logger.Info("session started")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sink := newConnSink(logger)

	// Reader: we expect no client messages; its only job is detecting the
	// close so the session is torn down promptly.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Writer drains the sink queue so the engine never blocks on I/O.
	go func() {
		defer cancel()
		for data := range sink.queue {
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	err = session.Run(ctx, sink)
	sink.close()
	if err != nil {
		logger.Error("session stopped", zap.Error(err))
		return
	}
	logger.Info("session stopped")
}

// connSink queues encoded messages for one connection. Emit never blocks:
// when the queue is full the message is dropped and counted, which is the
// engine's fire-and-forget contract.
type connSink struct {
	queue   chan []byte
	logger  *zap.Logger
	dropped int
}

func newConnSink(logger *zap.Logger) *connSink {
	return &connSink{
		queue:  make(chan []byte, sendQueueSize),
		logger: logger,
	}
}

func (c *connSink) Emit(res *sim.Result) {
	for _, data := range encodeResult(res) {
		select {
		case c.queue <- data:
		default:
			c.dropped++
			if c.dropped%100 == 1 {
				c.logger.Warn("slow consumer, dropping messages", zap.Int("dropped", c.dropped))
			}
		}
	}
}

func (c *connSink) close() {
	close(c.queue)
}
