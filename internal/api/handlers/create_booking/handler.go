package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("POST /bookings - Booking rejected: date=%s, time=%s, error=%v", req.Date, req.Time, err)
		} else {
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v", req.Date, req.Time, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: appointment_id=%s, warnings=%d",
		result.Appointment.ID, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusCreated, handlers.AppointmentEnvelope{
		OK:          true,
		Appointment: handlers.FromAppointment(result.Appointment),
		Warnings:    result.Warnings,
	})
}
