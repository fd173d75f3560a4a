package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type ItemReadQueries interface {
	FindItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, ownerID int64) ([]sqlc.Items, error)
	SearchAvailableItems(ctx context.Context, db sqlc.DBTX, text string) ([]sqlc.Items, error)
	ListItemsByRequestIDs(ctx context.Context, db sqlc.DBTX, requestIds []int64) ([]sqlc.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	row, err := r.queries.FindItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner items", err)
	}
	return toItemViews(rows), nil
}

// SearchAvailable expects non-blank text; blank searches are answered above the store.
func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	rows, err := r.queries.SearchAvailableItems(ctx, r.db, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*queries.ItemView, error) {
	if len(requestIDs) == 0 {
		return []*queries.ItemView{}, nil
	}
	rows, err := r.queries.ListItemsByRequestIDs(ctx, r.db, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by requests", err)
	}
	return toItemViews(rows), nil
}

func toItemView(row sqlc.Items) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		OwnerID:     row.OwnerID,
		RequestID:   pgconv.Int64PtrFromPgtype(row.RequestID),
	}
}

func toItemViews(rows []sqlc.Items) []*queries.ItemView {
	views := make([]*queries.ItemView, len(rows))
	for i, row := range rows {
		views[i] = toItemView(row)
	}
	return views
}
