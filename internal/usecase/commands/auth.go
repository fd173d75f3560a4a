package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/auth"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/password"
	"shareit/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	UserID      int64
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	creds, err := auth.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, err
	}

	snap, err := a.uow.CommandReads().UserCredentialsByEmail(ctx, creds.Email().Value())
	if err != nil {
		// same answer for unknown email and wrong password
		return nil, notFoundAs(err, auth.ErrInvalidCredentials)
	}
	if snap.PasswordHash == "" {
		return nil, auth.ErrInvalidCredentials
	}
	if err = password.Compare(snap.PasswordHash, creds.Password()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(snap.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "user logged in", "user_id", snap.ID)
	return &LoginResult{UserID: snap.ID, AccessToken: token}, nil
}
