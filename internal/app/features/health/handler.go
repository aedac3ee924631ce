package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/intelhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client     Pinger // nil when the data source is the in-memory mock
	DataSource string
	Log        *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(client Pinger, dataSource string, logger *zap.Logger) *Handler {
	return &Handler{
		Client:     client,
		DataSource: dataSource,
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	DataSource string `json:"data_source"`
	Database   string `json:"database"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "data_source":"mongo", "database":"connected" }
//
// With the mock source there is no database to check:
//
//	{ "status":"ok", "data_source":"mock", "database":"not_configured" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "data_source":"mongo", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:     "ok",
		DataSource: h.DataSource,
		Database:   "not_configured",
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
