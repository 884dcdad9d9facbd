package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CoachingService/internal/integrations/identity"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

const testSecret = "test-secret"

func actorEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromContext(r.Context())
		w.Header().Set("X-Actor", actor.UserID)
		if actor.IsAdmin {
			w.Header().Set("X-Admin", "true")
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func newAuth(t *testing.T) (*Auth, *identity.Verifier) {
	t.Helper()
	store := memory.NewStore()
	store.SetRole("admin-1", domain.RoleAdmin)
	v := identity.NewVerifier(testSecret)
	return NewAuth(v, store.Roles(), logger.Nop()), v
}

func bearer(t *testing.T, v *identity.Verifier, userID string) string {
	t.Helper()
	token, err := v.Sign(userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestOptionalAuth(t *testing.T) {
	auth, v := newAuth(t)
	h := auth.Optional(actorEcho())

	rec := serve(h, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Actor"))

	rec = serve(h, bearer(t, v, "user-1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-1", rec.Header().Get("X-Actor"))

	rec = serve(h, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"invalid or expired token"}`, rec.Body.String())
}

func TestRequiredAuth(t *testing.T) {
	auth, v := newAuth(t)
	h := auth.Required(actorEcho())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Basic abc").Code)

	rec := serve(h, bearer(t, v, "user-1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Admin"))
}

func TestAdminAuth(t *testing.T) {
	auth, v := newAuth(t)
	h := auth.Admin(actorEcho())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, bearer(t, v, "user-1")).Code)

	rec := serve(h, bearer(t, v, "admin-1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Admin"))
}

type failingRoles struct{}

func (failingRoles) GetRole(_ context.Context, _ string) (domain.Role, error) {
	return "", errors.New("db down")
}

func TestAuthRoleLookupFailure(t *testing.T) {
	v := identity.NewVerifier(testSecret)
	auth := NewAuth(v, failingRoles{}, logger.Nop())

	rec := serve(auth.Required(actorEcho()), bearer(t, v, "user-1"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (f *fakeRecorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method, path, status})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	r := mux.NewRouter()
	r.Use(Metrics(rec))
	r.HandleFunc("/appointments/{appointmentId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/appointments/123", nil))

	require.Len(t, rec.requests, 1)
	assert.Equal(t, recordedRequest{http.MethodGet, "/appointments/{appointmentId}", http.StatusTeapot}, rec.requests[0])
}

// fakeScripter счетчики в памяти вместо Redis
type fakeScripter struct {
	mu       sync.Mutex
	counters map[string]int64
	err      error
}

func (f *fakeScripter) run(ctx context.Context, keys []string) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counters == nil {
		f.counters = make(map[string]int64)
	}
	f.counters[keys[0]]++
	cmd.SetVal(f.counters[keys[0]])
	return cmd
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) EvalRO(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) EvalShaRO(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(ctx, keys)
}

func (f *fakeScripter) ScriptExists(ctx context.Context, _ ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceCmd(ctx)
}

func (f *fakeScripter) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	return redis.NewStringCmd(ctx)
}

func postFrom(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterFixedWindow(t *testing.T) {
	rl := NewRateLimiter(&fakeScripter{}, 2, time.Minute, "test", true, false, logger.Nop())
	h := rl.Middleware(actorEcho())

	assert.Equal(t, http.StatusNoContent, postFrom(h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, postFrom(h, "10.0.0.1").Code)

	rec := postFrom(h, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, postFrom(h, "10.0.0.2").Code)
}

func TestRateLimiterRedisFailure(t *testing.T) {
	broken := &fakeScripter{err: errors.New("connection refused")}

	open := NewRateLimiter(broken, 1, time.Minute, "test", true, false, logger.Nop()).Middleware(actorEcho())
	assert.Equal(t, http.StatusNoContent, postFrom(open, "10.0.0.1").Code)

	closed := NewRateLimiter(broken, 1, time.Minute, "test", false, false, logger.Nop()).Middleware(actorEcho())
	assert.Equal(t, http.StatusServiceUnavailable, postFrom(closed, "10.0.0.1").Code)
}

func postForwarded(h http.Handler, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", forwardedFor)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterIgnoresForwardedForByDefault(t *testing.T) {
	h := NewRateLimiter(&fakeScripter{}, 1, time.Minute, "test", true, false, logger.Nop()).Middleware(actorEcho())

	assert.Equal(t, http.StatusNoContent, postForwarded(h, "1.1.1.1").Code)
	// Подмена заголовка не дает новый лимит
	assert.Equal(t, http.StatusTooManyRequests, postForwarded(h, "2.2.2.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, postForwarded(h, "3.3.3.3").Code)
}

func TestRateLimiterTrustedForwardedFor(t *testing.T) {
	h := NewRateLimiter(&fakeScripter{}, 1, time.Minute, "test", true, true, logger.Nop()).Middleware(actorEcho())

	assert.Equal(t, http.StatusNoContent, postForwarded(h, "1.1.1.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, postForwarded(h, "1.1.1.1, 10.0.0.9").Code)
	assert.Equal(t, http.StatusNoContent, postForwarded(h, "2.2.2.2").Code)
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 10.0.0.1")

	assert.Equal(t, "10.0.0.1", clientKey(req, false))
	assert.Equal(t, "1.2.3.4", clientKey(req, true))

	req.Header.Set("X-Forwarded-For", " , 10.0.0.2")
	assert.Equal(t, "10.0.0.1", clientKey(req, true))
}
