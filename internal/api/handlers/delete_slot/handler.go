package delete_slot

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
)

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

// Handle DELETE /api/v1/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["slotId"]
	actor := middleware.ActorFromContext(r.Context())

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("DELETE /admin/slots/{id} - Rejected: slot_id=%s, error=%v", id, err)
		} else {
			h.logger.Error("DELETE /admin/slots/{id} - Failed to delete slot: slot_id=%s, error=%v", id, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("DELETE /admin/slots/{id} - Slot deleted: slot_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.OKResponse{OK: true})
}
