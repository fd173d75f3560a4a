package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/cookie"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase"
)

// SharerUserIDHeader names the acting user on requests without a token.
const SharerUserIDHeader = "X-Sharer-User-Id"

const ctxActorIDKey = "actor_id"

var (
	errMissingActor = errs.New("missing actor")
	errInvalidActor = errs.New("invalid actor")
)

type ActorMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewActorMiddleware(tokenValidator usecase.TokenValidator) *ActorMiddleware {
	return &ActorMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireActor resolves the acting user from a valid JWT (cookie or bearer)
// and falls back to the X-Sharer-User-Id header.
func (m *ActorMiddleware) RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			userID, err := m.tokenValidator.ValidateToken(token)
			if err == nil {
				c.Set(ctxActorIDKey, userID)
				c.Next()
				return
			}
			slog.WarnContext(c.Request.Context(), "Token validation failed, falling back to header", "error", err.Error())
		}

		raw := strings.TrimSpace(c.GetHeader(SharerUserIDHeader))
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingActor, "Missing "+SharerUserIDHeader+" header", nil)
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidActor, "Invalid "+SharerUserIDHeader+" header", nil)
			return
		}

		c.Set(ctxActorIDKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActorID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxActorIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
