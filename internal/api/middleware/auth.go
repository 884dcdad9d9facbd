package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

const (
	msgInvalidToken  = "invalid or expired token"
	msgAuthRequired  = "authentication required"
	msgAdminRequired = "admin access required"
)

// Auth проверяет Supabase JWT и собирает domain.Actor с ролью из user_roles
type Auth struct {
	verifier TokenVerifier
	roles    RoleRepository
	logger   Logger
}

func NewAuth(verifier TokenVerifier, roles RoleRepository, logger Logger) *Auth {
	return &Auth{
		verifier: verifier,
		roles:    roles,
		logger:   logger,
	}
}

// Optional пропускает гостей. Переданный, но невалидный токен отклоняется
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := bearerToken(r)
		if !present {
			next.ServeHTTP(w, r)
			return
		}

		actor, status := a.resolve(r, token)
		if status != 0 {
			a.reject(w, status)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// Required требует валидный токен
func (a *Auth) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := bearerToken(r)
		if !present {
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}

		actor, status := a.resolve(r, token)
		if status != 0 {
			a.reject(w, status)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// Admin требует валидный токен пользователя с ролью admin
func (a *Auth) Admin(next http.Handler) http.Handler {
	return a.Required(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromContext(r.Context())
		if !actor.IsAdmin {
			a.logger.Warn("%s %s - admin access denied: user_id=%s", r.Method, r.URL.Path, actor.UserID)
			handlers.RespondForbidden(w, msgAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func (a *Auth) resolve(r *http.Request, token string) (domain.Actor, int) {
	ident, err := a.verifier.Verify(token)
	if err != nil {
		a.logger.Warn("%s %s - token rejected: %v", r.Method, r.URL.Path, err)
		return domain.Actor{}, http.StatusUnauthorized
	}

	role, err := a.roles.GetRole(r.Context(), ident.UserID)
	if err != nil {
		a.logger.Error("%s %s - failed to resolve role for user_id=%s: %v", r.Method, r.URL.Path, ident.UserID, err)
		return domain.Actor{}, http.StatusInternalServerError
	}

	return domain.Actor{
		UserID:  ident.UserID,
		Email:   ident.Email,
		IsAdmin: role == domain.RoleAdmin,
	}, 0
}

func (a *Auth) reject(w http.ResponseWriter, status int) {
	if status == http.StatusInternalServerError {
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondUnauthorized(w, msgInvalidToken)
}

// bearerToken второе значение сообщает, был ли передан заголовок Authorization
func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", true
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
