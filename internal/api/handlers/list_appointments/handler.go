package list_appointments

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	var status *domain.AppointmentStatus
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		s := domain.AppointmentStatus(strings.ToLower(raw))
		status = &s
	}

	list, err := h.service.ListAll(r.Context(), actor, status)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("GET /admin/appointments - Rejected: user_id=%s, error=%v", actor.UserID, err)
		} else {
			h.logger.Error("GET /admin/appointments - Failed to list appointments: error=%v", err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("GET /admin/appointments - Listed %d appointments", len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentListEnvelope{
		OK:           true,
		Appointments: handlers.FromAppointmentList(list),
	})
}
