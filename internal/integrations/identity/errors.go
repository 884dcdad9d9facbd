package identity

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrInvalidToken возвращается для неподписанного, просроченного или битого токена
	ErrInvalidToken = fmt.Errorf("%w: identity: invalid token", domain.ErrUnauthorized)

	// ErrMissingSubject возвращается, когда в токене нет идентификатора пользователя
	ErrMissingSubject = fmt.Errorf("%w: identity: token has no subject", domain.ErrUnauthorized)
)
