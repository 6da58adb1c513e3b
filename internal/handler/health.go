package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

// HealthStatus represents the health status response
type HealthStatus struct {
	Status string `json:"status"`
}

// InfoResponse is returned by the root endpoint when no index page exists
type InfoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InfoHandler serves the root page, static assets and the health check
type InfoHandler struct {
	staticDir string
}

// NewInfoHandler creates a new InfoHandler. staticDir is only used when it
// exists at construction time; a missing directory is not an error.
func NewInfoHandler(staticDir string) *InfoHandler {
	h := &InfoHandler{}
	if staticDir == "" {
		return h
	}
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		h.staticDir = staticDir
	}
	return h
}

// HasStatic reports whether a static directory is mounted
func (h *InfoHandler) HasStatic() bool {
	return h.staticDir != ""
}

// StaticHandler serves files below /static
func (h *InfoHandler) StaticHandler() http.Handler {
	return http.StripPrefix("/static", http.FileServer(http.Dir(h.staticDir)))
}

// Root handles the API root
// @Summary API information
// @Description Serves the bundled index page, or a JSON status object when none exists
// @Tags Info
// @Produce html,json
// @Success 200 {object} InfoResponse
// @Router / [get]
func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	if h.HasStatic() {
		page, err := os.ReadFile(filepath.Join(h.staticDir, "index.html"))
		if err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(page)
			return
		}
	}

	JSON(w, http.StatusOK, InfoResponse{
		Status:  "ok",
		Message: "Telert API is running",
	})
}

// Health handles health check requests
// @Summary Health check
// @Description Liveness check, independent of provider configuration
// @Tags Info
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, HealthStatus{Status: "healthy"})
}
