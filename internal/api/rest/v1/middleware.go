package v1

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/accounts"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const currentAccountKey = "currentAccount"

// AuthMiddleware resolves "<prefix> <token>" from the configured header to the
// current account. Every failure is answered with 403.
func AuthMiddleware(authService accounts.AuthService, settings *config.SecuritySettings) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		scheme, token, ok := strings.Cut(ctx.GetHeader(settings.AuthHeaderName), " ")
		if !ok || scheme != settings.JWTTokenPrefix || strings.TrimSpace(token) == "" {
			abortWithMessage(ctx, http.StatusForbidden, msgForbidden)
			return
		}

		account, err := authService.Authenticate(ctx, strings.TrimSpace(token))
		if err != nil {
			if statusForError(err) == http.StatusInternalServerError {
				respondError(ctx, err)
				return
			}
			abortWithMessage(ctx, http.StatusForbidden, msgForbidden)
			return
		}

		ctx.Set(currentAccountKey, account)
		ctx.Next()
	}
}

// currentAccount returns the account AuthMiddleware stored
func currentAccount(ctx *gin.Context) *accounts.Account {
	value, ok := ctx.Get(currentAccountKey)
	if !ok {
		return nil
	}
	account, _ := value.(*accounts.Account)
	return account
}

// RateLimiter grants each client IP settings.Requests requests per fixed settings.Window.
// The budget resets when the window that opened with the client's first request ends.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	burst    int
	window   time.Duration
}

type clientLimiter struct {
	// zero Limit: the bucket never refills, a new one is issued per window
	limiter     *rate.Limiter
	windowStart time.Time
}

// NewRateLimiter creates a limiter granting settings.Requests per settings.Window
func NewRateLimiter(settings *config.RateLimitSettings) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		burst:    settings.Requests,
		window:   settings.Window,
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.limiters[key]
	if !ok || now.Sub(c.windowStart) >= rl.window {
		c = &clientLimiter{limiter: rate.NewLimiter(0, rl.burst), windowStart: now}
		rl.limiters[key] = c
	}
	return c.limiter.AllowN(now, 1)
}

// sweep drops clients whose window has ended
func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for k, c := range rl.limiters {
		if now.Sub(c.windowStart) >= rl.window {
			delete(rl.limiters, k)
		}
	}
}

// StartCleanup sweeps expired clients every window until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				rl.sweep(now)
			}
		}
	}()
}

// Handler returns the gin middleware answering 429 once a client's budget is spent
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !rl.allow(ctx.ClientIP(), time.Now()) {
			abortWithMessage(ctx, http.StatusTooManyRequests, msgRateLimitExceeded)
			return
		}
		ctx.Next()
	}
}
