package create_slot

import (
	"net/http"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/service/slots"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := middleware.ActorFromContext(r.Context())

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	slot, err := h.service.Create(r.Context(), actor, slots.CreateRequest{
		Date:        req.Date,
		Time:        req.Time,
		IsAvailable: isAvailable,
	})
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("POST /admin/slots - Rejected: date=%s, time=%s, error=%v", req.Date, req.Time, err)
		} else {
			h.logger.Error("POST /admin/slots - Failed to create slot: error=%v", err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: slot_id=%s", slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.SlotEnvelope{
		OK:   true,
		Slot: handlers.FromSlot(slot),
	})
}
