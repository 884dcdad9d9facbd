package submit_contact

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/service/contacts"
)

type ContactService interface {
	Submit(ctx context.Context, req contacts.SubmitRequest) (*contacts.SubmitResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
