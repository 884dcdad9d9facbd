package get_my_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
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

// Handle GET /api/v1/appointments/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	list, err := h.service.ListMine(r.Context(), actor)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("GET /appointments/me - Rejected: user_id=%s, error=%v", actor.UserID, err)
		} else {
			h.logger.Error("GET /appointments/me - Failed to list appointments: user_id=%s, error=%v", actor.UserID, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("GET /appointments/me - Listed %d appointments: user_id=%s", len(list), actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentListEnvelope{
		OK:           true,
		Appointments: handlers.FromAppointmentList(list),
	})
}
