//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/domain/auth"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/password"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"
	commandsmock "shareit/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthCommandsTestSuite struct {
	uowSuite
	tokens *commandsmock.MockTokenIssuer
	sut    commands.AuthCommands
	hash   string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.Hash("password123")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.uowSuite.SetupTest()
	s.tokens = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.sut = commands.NewAuthCommands(s.uow, s.tokens)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	creds := func(hash string) *shared.CredentialSnapshot {
		return &shared.CredentialSnapshot{ID: 1, Email: "test@example.com", PasswordHash: hash}
	}

	s.Run("issues a token", func() {
		s.reads.EXPECT().UserCredentialsByEmail(ctx, "test@example.com").Return(creds(s.hash), nil)
		s.tokens.EXPECT().GenerateToken(int64(1)).Return("token", nil)

		got, err := s.sut.Login(ctx, "test@example.com", "password123")
		s.Require().NoError(err)
		s.Equal(int64(1), got.UserID)
		s.Equal("token", got.AccessToken)
	})

	s.Run("wrong password", func() {
		s.reads.EXPECT().UserCredentialsByEmail(ctx, "test@example.com").Return(creds(s.hash), nil)

		_, err := s.sut.Login(ctx, "test@example.com", "wrong-password")
		s.ErrorIs(err, auth.ErrInvalidCredentials)
	})

	s.Run("unknown email", func() {
		s.reads.EXPECT().UserCredentialsByEmail(ctx, "ghost@example.com").Return(nil, notFound())

		_, err := s.sut.Login(ctx, "ghost@example.com", "password123")
		s.ErrorIs(err, auth.ErrInvalidCredentials)
	})

	s.Run("user without password cannot log in", func() {
		s.reads.EXPECT().UserCredentialsByEmail(ctx, "test@example.com").Return(creds(""), nil)

		_, err := s.sut.Login(ctx, "test@example.com", "password123")
		s.ErrorIs(err, auth.ErrInvalidCredentials)
	})

	s.Run("token failure", func() {
		s.reads.EXPECT().UserCredentialsByEmail(ctx, "test@example.com").Return(creds(s.hash), nil)
		s.tokens.EXPECT().GenerateToken(int64(1)).Return("", assert.AnError)

		_, err := s.sut.Login(ctx, "test@example.com", "password123")
		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}
