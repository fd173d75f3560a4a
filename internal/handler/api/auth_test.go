//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/domain/auth"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/cookie"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newTestRouter(s.T())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	h := api.NewAuthHandler(s.mockCommands, newTestJWT(), config.NewTestConfig())

	s.router.POST("/auth/login", h.Login)
	s.router.POST("/auth/logout", h.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: token in body and cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.LoginResult{UserID: 1, AccessToken: "test-jwt-token"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, 0)

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.UserID)
		s.Equal("test-jwt-token", body.AccessToken)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
		s.Equal(3600, c.MaxAge)
	})

	cases := []struct {
		name         string
		mutate       func(m map[string]any)
		expectInBody string
	}{
		{name: "missing email", mutate: testutil.Field("email", nil), expectInBody: "email is required"},
		{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectInBody: "Invalid email format"},
		{name: "empty password", mutate: testutil.Field("password", ""), expectInBody: "password is required"},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), 0)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectInBody)
		})
	}

	s.Run("error: wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, auth.ErrInvalidCredentials)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, 0)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, 0)

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}
