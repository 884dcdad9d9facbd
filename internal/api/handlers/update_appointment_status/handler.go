package update_appointment_status

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "id and status are required"
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

// Handle PATCH /api/v1/appointments/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Status) == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	status := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(req.Status)))

	result, err := h.service.UpdateStatus(r.Context(), actor, req.ID, status)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("PATCH /appointments/status - Rejected: appointment_id=%s, status=%s, error=%v", req.ID, status, err)
		} else {
			h.logger.Error("PATCH /appointments/status - Failed to update status: appointment_id=%s, error=%v", req.ID, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("PATCH /appointments/status - Status updated: appointment_id=%s, status=%s", req.ID, result.Appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.AppointmentEnvelope{
		OK:          true,
		Appointment: handlers.FromAppointment(result.Appointment),
		Warnings:    result.Warnings,
	})
}
