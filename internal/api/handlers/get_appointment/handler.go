package get_appointment

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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]
	actor := middleware.ActorFromContext(r.Context())

	appointment, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("GET /appointments/{id} - Rejected: appointment_id=%s, user_id=%s, error=%v", id, actor.UserID, err)
		} else {
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", id, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentEnvelope{
		OK:          true,
		Appointment: handlers.FromAppointment(appointment),
	})
}
