package repository

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type ItemRequestWriteQueries interface {
	CreateItemRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemRequestParams) (int64, error)
}

type ItemRequestRepository struct {
	queries ItemRequestWriteQueries
}

func NewItemRequestRepository(queries ItemRequestWriteQueries) *ItemRequestRepository {
	return &ItemRequestRepository{
		queries: queries,
	}
}

func (r *ItemRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *itemrequest.ItemRequest) (int64, error) {
	id, err := r.queries.CreateItemRequest(ctx, tx, sqlc.CreateItemRequestParams{
		Description: req.Description(),
		RequestorID: req.RequestorID(),
		Created:     pgconv.TimeToPgtype(req.Created()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item request", err)
	}
	return id, nil
}
