package healthz

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	pinger Pinger
	logger Logger
}

// NewHandler pinger может быть nil, тогда хранилище не проверяется
func NewHandler(pinger Pinger, logger Logger) *Handler {
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.pinger.PingContext(ctx); err != nil {
			h.logger.Error("GET /healthz - Storage is unreachable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
	}
	handlers.RespondJSON(w, http.StatusOK, handlers.OKResponse{OK: true})
}
