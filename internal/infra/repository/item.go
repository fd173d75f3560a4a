package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (int64, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) error
}

type ItemRepository struct {
	queries ItemWriteQueries
}

func NewItemRepository(queries ItemWriteQueries) *ItemRepository {
	return &ItemRepository{
		queries: queries,
	}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (int64, error) {
	id, err := r.queries.CreateItem(ctx, tx, sqlc.CreateItemParams{
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   pgconv.Int64PtrToPgtype(it.RequestID()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	err := r.queries.UpdateItem(ctx, tx, sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	return nil
}
