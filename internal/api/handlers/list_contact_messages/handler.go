package list_contact_messages

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

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

// Handle GET /api/v1/admin/contact-messages?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	var status *domain.ContactStatus
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		s := domain.ContactStatus(strings.ToLower(raw))
		status = &s
	}

	list, err := h.service.List(r.Context(), actor, status)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("GET /admin/contact-messages - Rejected: error=%v", err)
		} else {
			h.logger.Error("GET /admin/contact-messages - Failed to list messages: error=%v", err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ContactMessageListEnvelope{
		OK:       true,
		Messages: handlers.FromContactMessageList(list),
	})
}
