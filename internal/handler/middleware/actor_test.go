//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/cookie"
	"shareit/internal/pkg/jwt"
	"shareit/internal/usecase"
	"shareit/tests/common/authtest"
	"shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActorRouter(cfg config.JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewService(cfg.Secret, cfg.Duration, clock.NewRealClock())
	actor := middleware.NewActorMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/whoami", actor.RequireActor(), func(c *gin.Context) {
		id, ok := middleware.GetActorID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func TestRequireActor(t *testing.T) {
	cfg := config.JWTConfig{Secret: "actor-test-secret", Duration: time.Hour}
	router := newActorRouter(cfg)

	t.Run("header", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, 7)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7}`, w.Body.String())
	})

	t.Run("bearer token", func(t *testing.T) {
		token := authtest.GenerateToken(t, cfg, 3)
		w := httptest.PerformRequestWithToken(t, router, http.MethodGet, "/whoami", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":3}`, w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		token := authtest.GenerateToken(t, cfg, 5)
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/whoami", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":5}`, w.Body.String())
	})

	t.Run("expired token without header", func(t *testing.T) {
		token := authtest.CreateExpiredToken(t, cfg, 3)
		w := httptest.PerformRequestWithToken(t, router, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing X-Sharer-User-Id header")
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, 0)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing X-Sharer-User-Id header")
	})

	t.Run("non-positive header", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, -4)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid X-Sharer-User-Id header")
	})
}
