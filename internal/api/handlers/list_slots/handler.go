package list_slots

import (
	"net/http"
	"strconv"

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

// Handle GET /api/v1/slots?date= и GET /api/v1/admin/slots?date=&available=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	query := r.URL.Query()
	date := query.Get("date")

	onlyAvailable, _ := strconv.ParseBool(query.Get("available"))

	list, err := h.service.List(r.Context(), actor, date, onlyAvailable)
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("GET %s - Rejected: date=%s, error=%v", r.URL.Path, date, err)
		} else {
			h.logger.Error("GET %s - Failed to list slots: error=%v", r.URL.Path, err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.SlotListEnvelope{
		OK:    true,
		Slots: handlers.FromSlotList(list),
	})
}
