// Package server provides live graph visualization for the knowledge
// base over HTTP and websockets. Clients receive the full graph on
// connect and can ask reasoning questions over the socket; answers come
// back with the witness path highlighted.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/PavelShpagin/ontos/alias"
	"github.com/PavelShpagin/ontos/display"
	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/graph"
	"github.com/PavelShpagin/ontos/query"
)

// Server owns the client hub and the HTTP listener.
type Server struct {
	facade   *query.Facade
	resolver *alias.Resolver
	seedName string

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client

	mu        sync.RWMutex
	lastGraph *graph.Graph

	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *zap.SugaredLogger
}

// New builds a server around the facade. The graph is exported once up
// front; the store is immutable after load, so there is nothing to
// rebuild per connection.
func New(facade *query.Facade, resolver *alias.Resolver, seedName string, logger *zap.SugaredLogger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		facade:     facade,
		resolver:   resolver,
		seedName:   seedName,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		lastGraph:  graph.Build(facade.Store(), fmt.Sprintf("seed ontology %q", seedName)),
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger,
	}
}

// Graph returns the cached export.
func (s *Server) Graph() *graph.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastGraph
}

// Run starts the hub and serves HTTP on the given port, blocking until
// the listener fails or Shutdown is called.
func (s *Server) Run(port int) error {
	s.wg.Add(1)
	go s.runHub()

	mux := http.NewServeMux()
	mux.HandleFunc("/graph", s.handleGraph)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Infow("Graph server listening", "port", port, "seed", s.seedName)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "graph server failed")
	}
	return nil
}

// Shutdown drains clients and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	s.wg.Wait()
	return err
}

func (s *Server) runHub() {
	defer s.wg.Done()
	for {
		select {
		case client := <-s.register:
			s.mu.Lock()
			s.clients[client] = true
			count := len(s.clients)
			s.mu.Unlock()
			s.logger.Infow("Client connected", "client_id", client.id, "total", count)

		case client := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
			count := len(s.clients)
			s.mu.Unlock()
			s.logger.Infow("Client disconnected", "client_id", client.id, "total", count)

		case <-s.ctx.Done():
			// close connections, not send channels: a client goroutine
			// may be mid-send, and closed sockets unwind the pumps
			s.mu.Lock()
			for client := range s.clients {
				client.conn.Close()
				delete(s.clients, client)
			}
			s.mu.Unlock()
			return
		}
	}
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := display.MarshalJSON(s.Graph())
	if err != nil {
		s.logger.Errorw("Failed to marshal graph", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
