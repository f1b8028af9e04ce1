package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// sessionHeader carries the session identifier assigned on initialize.
const sessionHeader = "Mcp-Session-Id"

// HTTPTransport serves the same JSON-RPC traffic as stdio over HTTP POST,
// one message per request. Initialize responses carry a fresh session ID
// so clients can correlate subsequent calls.
type HTTPTransport struct {
	server *Server
}

// NewHTTPTransport wraps a Server for HTTP serving.
func NewHTTPTransport(server *Server) *HTTPTransport {
	return &HTTPTransport{server: server}
}

// Handler returns the http.Handler for the transport.
func (t *HTTPTransport) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", t.handlePost)
	return mux
}

// Start serves on addr until the context is cancelled, then shuts down
// gracefully.
func (t *HTTPTransport) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     t.Handler(),
		ReadTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("http transport listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http transport: %w", err)
		}
		<-errc
		return ctx.Err()
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	}
}

func (t *HTTPTransport) handlePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLineBytes))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := t.server.HandleMessage(r.Context(), body)
	if resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isInitialize(body) {
		w.Header().Set(sessionHeader, uuid.NewString())
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("write http response", "err", err)
	}
}

// isInitialize peeks at the method without a full decode so the session
// header can be set before the body is written.
func isInitialize(body []byte) bool {
	var probe struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.Method == MethodInitialize
}
