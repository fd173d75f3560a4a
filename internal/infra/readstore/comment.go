package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type CommentReadQueries interface {
	FindCommentByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.CommentDetails, error)
	ListCommentsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []int64) ([]sqlc.CommentDetails, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	row, err := r.queries.FindCommentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find comment by ID", err)
	}
	return toCommentView(row), nil
}

func (r *CommentReadStore) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*queries.CommentView, error) {
	if len(itemIDs) == 0 {
		return []*queries.CommentView{}, nil
	}
	rows, err := r.queries.ListCommentsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}

	views := make([]*queries.CommentView, len(rows))
	for i, row := range rows {
		views[i] = toCommentView(row)
	}
	return views, nil
}

func toCommentView(row sqlc.CommentDetails) *queries.CommentView {
	return &queries.CommentView{
		ID:         row.ID,
		Text:       row.Text,
		ItemID:     row.ItemID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Created:    pgconv.TimeFromPgtype(row.Created),
	}
}
