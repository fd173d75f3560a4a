package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (int64, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
}

func NewCommentRepository(queries CommentWriteQueries) *CommentRepository {
	return &CommentRepository{
		queries: queries,
	}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error) {
	id, err := r.queries.CreateComment(ctx, tx, sqlc.CreateCommentParams{
		Text:     c.Text(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  pgconv.TimeToPgtype(c.Created()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
