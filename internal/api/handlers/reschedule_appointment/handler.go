package reschedule_appointment

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	rescheduleBooking "github.com/m04kA/SMC-CoachingService/internal/usecase/reschedule_booking"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase RescheduleUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), &rescheduleBooking.Request{
		Actor:         actor,
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Rejected: appointment_id=%s, error=%v", id, err)
		} else {
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%s, error=%v", id, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("PATCH /appointments/{id}/reschedule - Appointment moved: appointment_id=%s, date=%s, time=%s",
		id, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentEnvelope{
		OK:          true,
		Appointment: handlers.FromAppointment(result.Appointment),
		Warnings:    result.Warnings,
	})
}
