//go:build unit

package api_test

import (
	"sync"
	"testing"
	"time"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/jwt"
	"shareit/internal/usecase"
	"shareit/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "handler-test-secret"

// the binding engine is global, so every suite validates against the same clock
var (
	testClock    = clock.NewMockClock(builder.BaseTime)
	registerOnce sync.Once
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var err error
	registerOnce.Do(func() { err = reqdto.RegisterValidators(testClock) })
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func newTestJWT() *jwt.Service {
	return jwt.NewService(testJWTSecret, time.Hour, testClock)
}

func newTestActor() gin.HandlerFunc {
	return middleware.NewActorMiddleware(usecase.NewTokenValidator(newTestJWT())).RequireActor()
}
