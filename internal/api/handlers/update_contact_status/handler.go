package update_contact_status

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/domain"
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

// Handle PATCH /api/v1/admin/contact-messages/{messageId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["messageId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/contact-messages/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	status := domain.ContactStatus(strings.ToLower(strings.TrimSpace(req.Status)))

	msg, err := h.service.UpdateStatus(r.Context(), actor, id, status)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("PATCH /admin/contact-messages/{id}/status - Rejected: message_id=%s, error=%v", id, err)
		} else {
			h.logger.Error("PATCH /admin/contact-messages/{id}/status - Failed to update: message_id=%s, error=%v", id, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("PATCH /admin/contact-messages/{id}/status - Status updated: message_id=%s, status=%s", id, msg.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.ContactMessageEnvelope{
		OK:      true,
		Message: handlers.FromContactMessage(msg),
	})
}
