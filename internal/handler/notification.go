package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/insider-one/telert-api/internal/domain"
	"github.com/insider-one/telert-api/internal/service"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	service  *service.NotificationService
	validate *validator.Validate
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(service *service.NotificationService) *NotificationHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	return &NotificationHandler{
		service:  service,
		validate: validate,
	}
}

// SendNotificationRequest represents a request to send a notification
// @Description Request to send a notification
type SendNotificationRequest struct {
	Message      string                   `json:"message" validate:"required" example:"Backup finished"`
	Provider     domain.ProviderSelection `json:"provider" swaggertype:"array,string" example:"slack,telegram"`
	AllProviders bool                     `json:"all_providers" example:"false"`
}

// Send sends a notification to the configured providers
// @Summary Send notification
// @Description Send a message to one, several, the default or all configured providers
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body SendNotificationRequest true "Notification request"
// @Success 200 {object} domain.SendOutcome
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /send [post]
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	// unconfigured wins over any body, valid or not
	if !h.service.IsConfigured() {
		HandleError(w, domain.ErrNotConfigured)
		return
	}

	var req SendNotificationRequest
	if err := DecodeJSON(r, &req); err != nil {
		HandleError(w, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		HandleError(w, toValidationErrors(err))
		return
	}

	outcome, err := h.service.Send(r.Context(), service.SendRequest{
		Message:      req.Message,
		Provider:     req.Provider,
		AllProviders: req.AllProviders,
	})
	if err != nil {
		HandleError(w, err)
		return
	}

	JSON(w, http.StatusOK, outcome)
}

func toValidationErrors(err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.NewValidationError("body", err.Error())
	}

	errs := domain.ValidationErrors{}
	for _, fe := range fieldErrs {
		message := "failed on " + fe.Tag()
		if fe.Tag() == "required" {
			message = "field required"
		}
		errs.Errors = append(errs.Errors, domain.NewValidationError(fe.Field(), message))
	}
	return errs
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
