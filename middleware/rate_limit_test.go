package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	serve := func(rl *RateLimiter, actor string) error {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if actor != "" {
			req.Header.Set(HeaderActorID, actor)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		return AuditContext()(rl.Middleware()(ok))(c)
	}

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute})
		assert.NoError(t, serve(rl, "a"))
		assert.NoError(t, serve(rl, "a"))
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute, Message: "slow down"})
		assert.NoError(t, serve(rl, "a"))

		err := serve(rl, "a")
		he, isHTTP := err.(*echo.HTTPError)
		if assert.True(t, isHTTP) {
			assert.Equal(t, http.StatusTooManyRequests, he.Code)
			assert.Equal(t, "slow down", he.Message)
		}
	})

	t.Run("SeparateActors", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
		assert.NoError(t, serve(rl, "a"))
		assert.NoError(t, serve(rl, "b"))
	})

	t.Run("WindowExpires", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
		start := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return start }
		assert.NoError(t, serve(rl, "a"))
		assert.Error(t, serve(rl, "a"))

		rl.now = func() time.Time { return start.Add(2 * time.Minute) }
		assert.NoError(t, serve(rl, "a"))
		assert.Empty(t, rl.store["actor:b"])
	})
}
