package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// rootMessage is the fixed payload served by the placeholder root route.
const rootMessage = "Movie Tracker API is running..."

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool *pgxpool.Pool
}

// New creates a new Handler instance.
func New(pool *pgxpool.Pool) *Handler {
	return &Handler{pool: pool}
}

// RegisterRoutes registers all HTTP routes. The API currently exposes a
// single placeholder route on the exact root path.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleRoot)
}

// handleRoot confirms the server is up. It deliberately does not touch the
// database: the route must answer even while the connectivity check is
// pending or failed.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, rootMessage)
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
