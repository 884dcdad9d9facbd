package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CoachingService/internal/api/handlers"
)

const (
	msgRateLimited        = "too many requests, please try again later"
	msgRateLimiterUnavail = "service temporarily unavailable"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter лимит запросов с фиксированным окном в Redis.
// Ключ окна общий для всех экземпляров сервиса
type RateLimiter struct {
	rdb      redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	// trustForwardedFor включается только за доверенным прокси
	trustForwardedFor bool
	logger            Logger
}

func NewRateLimiter(rdb redis.Scripter, limit int, window time.Duration, prefix string, failOpen, trustForwardedFor bool, logger Logger) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	if strings.TrimSpace(prefix) == "" {
		prefix = "rl"
	}
	return &RateLimiter{
		rdb:               rdb,
		limit:             limit,
		window:            window,
		prefix:            prefix,
		failOpen:          failOpen,
		trustForwardedFor: trustForwardedFor,
		logger:            logger,
	}
}

// Middleware при недоступном Redis пропускает запрос, если включен failOpen
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r, rl.trustForwardedFor)
		key := rl.prefix + ":" + r.URL.Path + ":" + client
		count, err := rl.incr(r.Context(), key)
		if err != nil {
			rl.logger.Warn("%s %s - rate limiter error: %v", r.Method, r.URL.Path, err)
			if rl.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRateLimiterUnavail)
			return
		}

		if count > int64(rl.limit) {
			rl.logger.Warn("%s %s - rate limit exceeded: client=%s", r.Method, r.URL.Path, client)
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

// clientKey адрес клиента для ключа лимита. X-Forwarded-For задается клиентом,
// поэтому учитывается только при trustForwardedFor
func clientKey(r *http.Request, trustForwardedFor bool) string {
	if trustForwardedFor {
		if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
			parts := strings.Split(ip, ",")
			if first := strings.TrimSpace(parts[0]); first != "" {
				return first
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
