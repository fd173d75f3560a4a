package queries

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}

// requireUser resolves the acting user or fails with the user not-found error.
func requireUser(ctx context.Context, users UserReadStore, id int64) error {
	_, err := users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.ErrUserNotFound
		}
		return err
	}
	return nil
}
