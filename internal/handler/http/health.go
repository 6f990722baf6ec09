package http

import (
	"net/http"
	"time"

	"textstats/internal/analyzer"
	"textstats/internal/handler/http/respond"
)

// HealthResponse is the JSON body for /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Time    string                 `json:"time"`
	Checks  map[string]CheckStatus `json:"checks"`
}

// CheckStatus reports one health check item.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler reports service health. The service holds no external
// resources, so the only meaningful check is that the default analyzer can
// be built and produces sane output.
type HealthHandler struct {
	Registry *analyzer.Registry
	Version  string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{}
	status := "healthy"
	code := http.StatusOK

	a := h.Registry.Get("")
	if a.CountWords("health check") == 2 {
		checks["analyzer"] = CheckStatus{Status: "healthy"}
	} else {
		checks["analyzer"] = CheckStatus{Status: "unhealthy", Message: "default analyzer returned unexpected count"}
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, HealthResponse{
		Status:  status,
		Version: h.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Checks:  checks,
	})
}

// ReadyHandler reports readiness; the analyzer registry is warmed at
// startup, so readiness mirrors the health check.
type ReadyHandler struct {
	Registry *analyzer.Registry
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Registry.Get("").CountWords("ready") != 1 {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LiveHandler reports process liveness.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
