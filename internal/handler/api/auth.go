package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/cookie"
	"shareit/internal/pkg/jwt"
	"shareit/internal/usecase/commands"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	jwtService   *jwt.Service
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

// @Summary User login
// @Description Login with email and password. The token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, reqdto.BindError(err))
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, h.jwtService.Duration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		UserID:      result.UserID,
		AccessToken: result.AccessToken,
	})
}

// @Summary User logout
// @Description Clears the token cookie. Tokens are stateless and stay valid until they expire.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
