// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/system/timeouts"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
)

// Handler holds dependencies needed for health checks. Client is nil
// when the app runs on the in-memory store backend.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and {"status":"ok","store":"memory"} or
// {"status":"ok","store":"mongo"}. On DB failure: 503.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil {
		webjson.Write(w, http.StatusOK, healthResponse{Status: "ok", Store: "memory"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		webjson.Write(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "error",
			Store:   "mongo",
			Message: "Database unavailable",
			Error:   err.Error(),
		})
		return
	}

	webjson.Write(w, http.StatusOK, healthResponse{Status: "ok", Store: "mongo"})
}
