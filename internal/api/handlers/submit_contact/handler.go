package submit_contact

import (
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/service/contacts"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), contacts.SubmitRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	})
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("POST /contact - Rejected: error=%v", err)
		} else {
			h.logger.Error("POST /contact - Failed to store message: error=%v", err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("POST /contact - Message stored: message_id=%s", result.Message.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ContactMessageEnvelope{
		OK:       true,
		Message:  handlers.FromContactMessage(result.Message),
		Warnings: result.Warnings,
	})
}
