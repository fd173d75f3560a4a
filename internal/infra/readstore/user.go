package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListUsersRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}, nil
}

// FindCredentials returns the stored hash, empty for users created without a password.
func (r *UserReadStore) FindCredentials(ctx context.Context, email string) (*shared.CredentialSnapshot, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	var hash string
	if p := pgconv.StringPtrFromPgtype(row.PasswordHash); p != nil {
		hash = *p
	}
	return &shared.CredentialSnapshot{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: hash,
	}, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		views[i] = &queries.UserView{
			ID:    row.ID,
			Name:  row.Name,
			Email: row.Email,
		}
	}
	return views, nil
}
