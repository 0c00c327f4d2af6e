package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeusync/arena/internal/arena"
	"github.com/zeusync/arena/internal/core/observability/log"
)

// SnapshotSource is what the feed reads state from.
type SnapshotSource interface {
	Snapshot() arena.Snapshot
}

// Config holds debug feed settings.
type Config struct {
	ListenAddr      string
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// ClientBuffer is how many snapshots may queue per client before new ones
	// are dropped for it.
	ClientBuffer int
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:      "127.0.0.1:8089",
		WriteTimeout:    time.Second,
		ShutdownTimeout: 5 * time.Second,
		ClientBuffer:    4,
	}
}

// Server is the debug overlay feed. It serves the latest snapshot over plain
// HTTP and pushes every broadcast snapshot to websocket clients.
type Server struct {
	config Config
	source SnapshotSource
	logger log.Log

	mu      sync.Mutex
	clients map[*client]struct{}

	running int32 // atomic bool
	closed  int32 // atomic bool
	dropped uint64
}

func NewServer(config Config, source SnapshotSource, logger log.Log) (*Server, error) {
	if config.ListenAddr == "" {
		return nil, fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if config.ClientBuffer <= 0 {
		config.ClientBuffer = DefaultConfig().ClientBuffer
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = DefaultConfig().WriteTimeout
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	return &Server{
		config:  config,
		source:  source,
		logger:  logger.With(log.String("component", "debug-feed")),
		clients: make(map[*client]struct{}),
	}, nil
}

// Handler routes the feed endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/ws", s.handleWebSocket)
	mux.HandleFunc("GET /debug/snapshot", s.handleSnapshot)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if atomic.LoadInt32(&s.closed) == 1 {
		return ErrServerClosed
	}
	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		return ErrServerAlreadyRunning
	}
	defer atomic.StoreInt32(&s.running, 0)

	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.ListenAddr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.logger.Info("debug feed listening", log.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err = <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.Close()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown debug feed: %w", err)
	}
	s.logger.Info("debug feed stopped")
	return nil
}

// Close disconnects every websocket client. Further broadcasts are ignored.
func (s *Server) Close() {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.close()
		delete(s.clients, c)
	}
}

// Broadcast queues snap for every connected client. A client whose queue is
// full misses this snapshot.
func (s *Server) Broadcast(snap arena.Snapshot) {
	if atomic.LoadInt32(&s.closed) == 1 {
		return
	}
	payload, err := encodeSnapshot(snap)
	if err != nil {
		s.logger.Error("encode snapshot", log.Uint64("tick", snap.Tick), log.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		if !c.enqueue(payload) {
			atomic.AddUint64(&s.dropped, 1)
		}
	}
}

// Stats reports connected clients and snapshots dropped for slow clients.
func (s *Server) Stats() Stats {
	s.mu.Lock()
	n := len(s.clients)
	s.mu.Unlock()
	return Stats{Clients: n, Dropped: atomic.LoadUint64(&s.dropped)}
}

type Stats struct {
	Clients int
	Dropped uint64
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	payload, err := encodeSnapshot(s.source.Snapshot())
	if err != nil {
		http.Error(w, "encode snapshot", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (s *Server) register(c *client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if atomic.LoadInt32(&s.closed) == 1 {
		return false
	}
	s.clients[c] = struct{}{}
	return true
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		c.close()
	}
}
