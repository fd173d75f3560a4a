package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/password"
	"shareit/internal/usecase/shared"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password *string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (*user.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*user.User, error)
	Delete(ctx context.Context, id int64) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (*user.User, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	var hash string
	if in.Password != nil {
		pw, perr := user.NewPassword(*in.Password)
		if perr != nil {
			return nil, perr
		}
		if hash, perr = password.Hash(pw.Value()); perr != nil {
			return nil, perr
		}
	}

	u, err := user.NewUser(in.Name, email, hash)
	if err != nil {
		return nil, err
	}

	var created *user.User
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			return duplicateAs(derr, user.ErrEmailTaken)
		}
		created = u.WithID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user created", "user_id", created.ID())
	return created, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, id int64, in UpdateUserInput) (*user.User, error) {
	var updated *user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, user.ErrUserNotFound)
		}

		email, derr := user.NewEmail(snap.Email)
		if derr != nil {
			return derr
		}
		u := user.ReconstructUser(snap.ID, snap.Name, email)
		if _, derr = u.Patch(in.Name, in.Email); derr != nil {
			return derr
		}

		if derr = tx.Users().Update(ctx, tx.DB(), u); derr != nil {
			return duplicateAs(notFoundAs(derr, user.ErrUserNotFound), user.ErrEmailTaken)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Users().Delete(ctx, tx.DB(), id)
		if infra.IsKind(derr, infra.KindForeignKeyViolated) {
			return user.ErrUserHasRelations
		}
		return notFoundAs(derr, user.ErrUserNotFound)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

func duplicateAs(err, domainErr error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return domainErr
	}
	return err
}
