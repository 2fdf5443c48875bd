// Package mcphttp serves the admin/debug HTTP endpoints used in SSE mode.
package mcphttp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/luizzzvictor/mcp-comexstat/internal/registry"
)

// Handlers struct holds dependencies for the HTTP handlers.
type Handlers struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers struct.
func NewHandlers(reg *registry.Registry, logger *slog.Logger) *Handlers {
	return &Handlers{
		registry: reg,
		logger:   logger.With("component", "mcphttp_handler"),
	}
}

// RegisterAdminRoutes sets up the HTTP routes for the admin endpoints.
func (h *Handlers) RegisterAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /tools", h.handleListTools)
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"tools":  h.registry.Len(),
	})
}

// toolSummary is the admin-facing view of one catalog entry.
type toolSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handlers) handleListTools(w http.ResponseWriter, r *http.Request) {
	ops := h.registry.List()
	out := make([]toolSummary, 0, len(ops))
	for _, op := range ops {
		out = append(out, toolSummary{Name: op.Name, Description: op.Description})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.logger.Error("Failed to encode tool list", slog.Any("error", err))
	}
}
