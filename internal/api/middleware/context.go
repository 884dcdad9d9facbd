package middleware

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type ctxKey int

const (
	ctxKeyActor ctxKey = iota
	ctxKeyRequestID
)

// WithActor кладет актора в контекст запроса
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, actor)
}

// ActorFromContext актор текущего запроса, гость если авторизации не было
func ActorFromContext(ctx context.Context) domain.Actor {
	actor, ok := ctx.Value(ctxKeyActor).(domain.Actor)
	if !ok {
		return domain.Anonymous()
	}
	return actor
}

// RequestIDFromContext идентификатор текущего запроса
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
