package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

type ItemRequestCommands interface {
	Create(ctx context.Context, requestorID int64, description string) (*itemrequest.ItemRequest, error)
}

type itemRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemRequestCommands(uow shared.UnitOfWork, clk clock.Clock) ItemRequestCommands {
	return &itemRequestCommandsImpl{uow: uow, clock: clk}
}

func (c *itemRequestCommandsImpl) Create(ctx context.Context, requestorID int64, description string) (*itemrequest.ItemRequest, error) {
	r, err := itemrequest.NewItemRequest(requestorID, description, c.clock.Now())
	if err != nil {
		return nil, err
	}

	var created *itemrequest.ItemRequest
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, requestorID); derr != nil {
			return notFoundAs(derr, user.ErrUserNotFound)
		}

		id, derr := tx.ItemRequests().Create(ctx, tx.DB(), r)
		if derr != nil {
			return derr
		}
		created = r.WithID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item request created", "request_id", created.ID(), "requestor_id", requestorID)
	return created, nil
}
