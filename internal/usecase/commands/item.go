package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, in CreateItemInput) (*item.Item, error)
	Update(ctx context.Context, actorID, itemID int64, in UpdateItemInput) (*item.Item, error)
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*comment.Comment, error)
}

type itemCommandsImpl struct {
	uow         shared.UnitOfWork
	eligibility CommentEligibility
	clock       clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, eligibility CommentEligibility, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{
		uow:         uow,
		eligibility: eligibility,
		clock:       clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID int64, in CreateItemInput) (*item.Item, error) {
	it, err := item.NewItem(ownerID, in.Name, in.Description, in.Available, in.RequestID)
	if err != nil {
		return nil, err
	}

	var created *item.Item
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			return notFoundAs(derr, user.ErrUserNotFound)
		}
		if in.RequestID != nil {
			if _, derr := tx.Reads().ItemRequestByID(ctx, *in.RequestID); derr != nil {
				return notFoundAs(derr, itemrequest.ErrRequestNotFound)
			}
		}

		id, derr := tx.Items().Create(ctx, tx.DB(), it)
		if derr != nil {
			return derr
		}
		created = it.WithID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item created", "item_id", created.ID(), "owner_id", ownerID)
	return created, nil
}

func (c *itemCommandsImpl) Update(ctx context.Context, actorID, itemID int64, in UpdateItemInput) (*item.Item, error) {
	var updated *item.Item
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			return notFoundAs(derr, item.ErrItemNotFound)
		}

		it := item.ReconstructItem(snap.ID, snap.Name, snap.Description, snap.Available, snap.OwnerID, snap.RequestID)
		if derr = it.Patch(actorID, in.Name, in.Description, in.Available); derr != nil {
			return derr
		}

		if derr = tx.Items().Update(ctx, tx.DB(), it); derr != nil {
			return notFoundAs(derr, item.ErrItemNotFound)
		}
		updated = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddComment accepts the comment only when the author has a booking of the item
// that has already ended.
func (c *itemCommandsImpl) AddComment(ctx context.Context, authorID, itemID int64, text string) (*comment.Comment, error) {
	var created *comment.Comment
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, authorID); derr != nil {
			return notFoundAs(derr, user.ErrUserNotFound)
		}
		if _, derr := tx.Reads().ItemByID(ctx, itemID); derr != nil {
			return notFoundAs(derr, item.ErrItemNotFound)
		}

		eligible, derr := c.eligibility.EligibleBookings(ctx, itemID, authorID)
		if derr != nil {
			return derr
		}

		cm, derr := comment.NewComment(authorID, itemID, text, len(eligible), c.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.Comments().Create(ctx, tx.DB(), cm)
		if derr != nil {
			return derr
		}
		created = cm.WithID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "comment added", "comment_id", created.ID(), "item_id", itemID, "author_id", authorID)
	return created, nil
}
