//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/cookie"
	"shareit/internal/pkg/jwt"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/auth/login",
		request.LoginRequest{Email: email, Password: password}, 0)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email string) (int64, *http.Cookie) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, name, email)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}

func GenerateToken(t *testing.T, cfg config.JWTConfig, userID int64) string {
	t.Helper()
	token, err := jwt.NewService(cfg.Secret, cfg.Duration, clock.NewRealClock()).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token issued far enough in the past to have expired already.
func CreateExpiredToken(t *testing.T, cfg config.JWTConfig, userID int64) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-cfg.Duration - time.Hour))
	token, err := jwt.NewService(cfg.Secret, cfg.Duration, issued).GenerateToken(userID)
	require.NoError(t, err)
	return token
}
