package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (int64, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) error
	DeleteUser(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error) {
	var hash *string
	if u.PasswordHash() != "" {
		h := u.PasswordHash()
		hash = &h
	}

	id, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: pgconv.StringPtrToPgtype(hash),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	err := r.queries.UpdateUser(ctx, tx, sqlc.UpdateUserParams{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteUser(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
