package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is the /health body. The pipeline holds no persistent
// connections between job runs, so a reachable process is a healthy one;
// per-job outcomes are exposed through /metrics instead.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type HealthHandler struct {
	version   string
	startTime time.Time
}

func NewHealthHandler(version string, startTime time.Time) *HealthHandler {
	return &HealthHandler{version: version, startTime: startTime}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
