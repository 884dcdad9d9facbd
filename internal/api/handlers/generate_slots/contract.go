package generate_slots

import (
	"context"

	generateSlotsUC "github.com/m04kA/SMC-CoachingService/internal/usecase/generate_slots"
)

type UseCase interface {
	Execute(ctx context.Context, req *generateSlotsUC.Request) (*generateSlotsUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
