package cancel_appointment

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle POST /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]
	actor := middleware.ActorFromContext(r.Context())

	result, err := h.service.Cancel(r.Context(), actor, id)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("POST /appointments/{id}/cancel - Rejected: appointment_id=%s, user_id=%s, error=%v", id, actor.UserID, err)
		} else {
			h.logger.Error("POST /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v", id, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("POST /appointments/{id}/cancel - Appointment cancelled: appointment_id=%s, user_id=%s", id, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentEnvelope{
		OK:          true,
		Appointment: handlers.FromAppointment(result.Appointment),
		Warnings:    result.Warnings,
	})
}
