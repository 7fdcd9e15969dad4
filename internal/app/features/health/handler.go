package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/adminconsole/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Pinger reports whether the Admin API host is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	API Pinger
	Log *zap.Logger
}

// NewHandler constructs a health Handler with the Admin API client and logger.
func NewHandler(api Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		API: api,
		Log: logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	API     string `json:"api"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "api":"reachable" }
//
// On Admin API failure: 503 and
//
//	{ "status":"error", "api":"unreachable", "message":"Admin API unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		API:    "reachable",
	}

	if err := h.API.Ping(ctx); err != nil {
		h.Log.Error("health-check: admin api ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.API = "unreachable"
		resp.Message = "Admin API unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
