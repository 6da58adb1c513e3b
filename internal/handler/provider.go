package handler

import (
	"net/http"

	"github.com/insider-one/telert-api/internal/service"
)

// ProviderHandler exposes provider configuration
type ProviderHandler struct {
	service *service.NotificationService
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(service *service.NotificationService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// Status reports whether any messaging provider is configured
// @Summary Configuration status
// @Description Check if any messaging providers are configured. Secrets are masked.
// @Tags Info
// @Produce json
// @Success 200 {object} service.StatusReport
// @Router /status [get]
func (h *ProviderHandler) Status(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.service.Status(r.Context()))
}

// List lists all configured providers
// @Summary List providers
// @Description List all configured providers and the default ones. Secrets are masked.
// @Tags Configuration
// @Produce json
// @Success 200 {object} service.ProvidersReport
// @Router /providers [get]
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.service.Providers(r.Context()))
}
