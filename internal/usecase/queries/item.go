package queries

import (
	"context"
	"strings"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

var ErrCommentNotFound = errs.NotFound("Comment not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*ItemView, error)
}

type CommentReadStore interface {
	FindByID(ctx context.Context, id int64) (*CommentView, error)
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*CommentView, error)
}

type ItemQueries interface {
	GetItem(ctx context.Context, actorID, itemID int64) (*ItemDetailView, error)
	ListOwnerItems(ctx context.Context, ownerID int64) ([]*ItemDetailView, error)
	Search(ctx context.Context, actorID int64, text string) ([]*ItemView, error)
	GetComment(ctx context.Context, id int64) (*CommentView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	comments CommentReadStore
	users    UserReadStore
	bookings BookingQueries
	clock    clock.Clock
}

func NewItemQueries(
	items ItemReadStore,
	comments CommentReadStore,
	users UserReadStore,
	bookings BookingQueries,
	clk clock.Clock,
) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		comments: comments,
		users:    users,
		bookings: bookings,
		clock:    clk,
	}
}

func (q *itemQueriesImpl) GetItem(ctx context.Context, actorID, itemID int64) (*ItemDetailView, error) {
	it, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, item.ErrItemNotFound
		}
		return nil, err
	}

	detail := &ItemDetailView{ItemView: *it}
	if it.OwnerID == actorID {
		if detail.LastBooking, err = q.bookings.WindowForItem(ctx, itemID, booking.WindowLast); err != nil {
			return nil, err
		}
		if detail.NextBooking, err = q.bookings.WindowForItem(ctx, itemID, booking.WindowNext); err != nil {
			return nil, err
		}
	}

	comments, err := q.comments.ListByItemIDs(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}
	detail.Comments = nonNil(comments)
	return detail, nil
}

// ListOwnerItems loads bookings and comments for all items with one query each
// and computes the windows in memory.
func (q *itemQueriesImpl) ListOwnerItems(ctx context.Context, ownerID int64) ([]*ItemDetailView, error) {
	items, err := q.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*ItemDetailView{}, nil
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	bookingsByItem, err := q.bookings.BookingsForItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := q.comments.ListByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[int64][]*CommentView, len(ids))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	now := q.clock.Now()
	result := make([]*ItemDetailView, 0, len(items))
	for _, it := range items {
		bs := bookingsByItem[it.ID]
		result = append(result, &ItemDetailView{
			ItemView:    *it,
			LastBooking: SelectWindow(bs, booking.WindowLast, now),
			NextBooking: SelectWindow(bs, booking.WindowNext, now),
			Comments:    nonNil(commentsByItem[it.ID]),
		})
	}
	return result, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, actorID int64, text string) ([]*ItemView, error) {
	if err := requireUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	return q.items.SearchAvailable(ctx, text)
}

func (q *itemQueriesImpl) GetComment(ctx context.Context, id int64) (*CommentView, error) {
	c, err := q.comments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}

func nonNil(cs []*CommentView) []*CommentView {
	if cs == nil {
		return []*CommentView{}
	}
	return cs
}
