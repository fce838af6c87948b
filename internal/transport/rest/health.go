package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
)

// ServerName identifies this service in health responses.
const ServerName = "verb_game"

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// statsProvider reports what the loaded corpus contains.
type statsProvider interface {
	Stats() corpus.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	corpus  statsProvider
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler. db may be nil when the corpus is
// file-backed; the database component is then omitted.
func NewHealthHandler(c statsProvider, db dbPinger, version string) *HealthHandler {
	return &HealthHandler{corpus: c, db: db, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Server     string                `json:"server"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string        `json:"status"`
	Latency string        `json:"latency,omitempty"`
	Corpus  *corpus.Stats `json:"corpus,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Server:    ServerName,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 503 when no quiz can be served or the
// database does not answer.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.corpus.Stats().Sentences == 0 {
		status = "down"
	} else if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status = "down"
		}
	}

	writeJSON(w, statusCode(status), HealthResponse{
		Status:    status,
		Server:    ServerName,
		Timestamp: time.Now(),
	})
}

// Health is the full health check: corpus counts, DB latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall := "ok"
	components := make(map[string]CompStatus, 2)

	stats := h.corpus.Stats()
	corpusStatus := CompStatus{Status: "ok", Corpus: &stats}
	if stats.Sentences == 0 {
		corpusStatus.Status = "down"
		overall = "down"
	}
	components["corpus"] = corpusStatus

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overall = "down"
		} else {
			components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
		}
	}

	writeJSON(w, statusCode(overall), HealthResponse{
		Status:     overall,
		Server:     ServerName,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// ErrorResponse is the payload of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
