package generate_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	generateSlotsUC "github.com/m04kA/SMC-CoachingService/internal/usecase/generate_slots"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	weekdays := make([]time.Weekday, 0, len(req.Weekdays))
	for _, d := range req.Weekdays {
		weekdays = append(weekdays, time.Weekday(d))
	}

	resp, err := h.useCase.Execute(r.Context(), &generateSlotsUC.Request{
		Actor:       middleware.ActorFromContext(r.Context()),
		From:        req.From,
		To:          req.To,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		StepMinutes: req.StepMinutes,
		Weekdays:    weekdays,
	})
	if err != nil {
		if handlers.IsClientError(err) {
			h.logger.Warn("POST /admin/slots/generate - Rejected: from=%s, to=%s, error=%v", req.From, req.To, err)
		} else {
			h.logger.Error("POST /admin/slots/generate - Failed to generate slots: error=%v", err)
		}
		handlers.RespondServiceError(w, err)
		return
	}

	h.logger.Info("POST /admin/slots/generate - Generated: created=%d, skipped=%d", len(resp.Created), resp.Skipped)
	handlers.RespondJSON(w, http.StatusCreated, GenerateSlotsResponse{
		OK:      true,
		Created: handlers.FromSlotList(resp.Created),
		Skipped: resp.Skipped,
	})
}
