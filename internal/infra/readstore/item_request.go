package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type ItemRequestReadQueries interface {
	FindItemRequestByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ItemRequests, error)
	ListItemRequestsByRequestor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemRequestsByRequestorParams) ([]sqlc.ItemRequests, error)
	ListItemRequestsExcludingRequestor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemRequestsExcludingRequestorParams) ([]sqlc.ItemRequests, error)
}

type ItemRequestReadStore struct {
	queries ItemRequestReadQueries
	db      sqlc.DBTX
}

func NewItemRequestReadStore(queries ItemRequestReadQueries, db sqlc.DBTX) *ItemRequestReadStore {
	return &ItemRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRequestReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemRequestView, error) {
	row, err := r.queries.FindItemRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return toItemRequestView(row), nil
}

func (r *ItemRequestReadStore) ListByRequestor(ctx context.Context, requestorID int64, limit *int, offset int) ([]*queries.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsByRequestor(ctx, r.db, sqlc.ListItemRequestsByRequestorParams{
		RequestorID: requestorID,
		RowLimit:    pgconv.Int4Ptr(limit),
		RowOffset:   pgconv.ClampInt32(offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list own item requests", err)
	}
	return toItemRequestViews(rows), nil
}

func (r *ItemRequestReadStore) ListExcludingRequestor(ctx context.Context, requestorID int64, limit *int, offset int) ([]*queries.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsExcludingRequestor(ctx, r.db, sqlc.ListItemRequestsExcludingRequestorParams{
		RequestorID: requestorID,
		RowLimit:    pgconv.Int4Ptr(limit),
		RowOffset:   pgconv.ClampInt32(offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return toItemRequestViews(rows), nil
}

func toItemRequestView(row sqlc.ItemRequests) *queries.ItemRequestView {
	return &queries.ItemRequestView{
		ID:          row.ID,
		Description: row.Description,
		RequestorID: row.RequestorID,
		Created:     pgconv.TimeFromPgtype(row.Created),
		Items:       []*queries.ItemView{},
	}
}

func toItemRequestViews(rows []sqlc.ItemRequests) []*queries.ItemRequestView {
	views := make([]*queries.ItemRequestView, len(rows))
	for i, row := range rows {
		views[i] = toItemRequestView(row)
	}
	return views
}
