package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
)

type BookingReadStore interface {
	FindVisible(ctx context.Context, actorID, bookingID int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, limit *int, offset int) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state booking.State, now time.Time, limit *int, offset int) ([]*BookingView, error)
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*BookingView, error)
	// FindLastForItem and FindNextForItem return nil without error when no booking qualifies.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*BookingView, error)
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*BookingView, error)
	ListCompletedForComment(ctx context.Context, itemID, bookerID int64, now time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	GetVisible(ctx context.Context, actorID, bookingID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, userID int64, state booking.State, page Page) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state booking.State, page Page) ([]*BookingView, error)
	BookingsForItems(ctx context.Context, itemIDs []int64) (map[int64][]*BookingView, error)
	WindowForItem(ctx context.Context, itemID int64, which booking.Window) (*BookingView, error)
	EligibleBookings(ctx context.Context, itemID, authorID int64) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

// GetVisible hides bookings the actor neither made nor owns the item of behind
// the same not-found error as a missing booking.
func (q *bookingQueriesImpl) GetVisible(ctx context.Context, actorID, bookingID int64) (*BookingView, error) {
	view, err := q.bookings.FindVisible(ctx, actorID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, userID int64, state booking.State, page Page) ([]*BookingView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}
	return q.bookings.ListByBooker(ctx, userID, state, q.clock.Now(), page.Limit(), page.Offset())
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID int64, state booking.State, page Page) ([]*BookingView, error) {
	if err := requireUser(ctx, q.users, ownerID); err != nil {
		return nil, err
	}
	return q.bookings.ListByOwner(ctx, ownerID, state, q.clock.Now(), page.Limit(), page.Offset())
}

// BookingsForItems fetches the non-rejected bookings of every item in one query.
func (q *bookingQueriesImpl) BookingsForItems(ctx context.Context, itemIDs []int64) (map[int64][]*BookingView, error) {
	grouped := make(map[int64][]*BookingView, len(itemIDs))
	if len(itemIDs) == 0 {
		return grouped, nil
	}

	rows, err := q.bookings.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	for _, b := range rows {
		grouped[b.ItemID] = append(grouped[b.ItemID], b)
	}
	return grouped, nil
}

func (q *bookingQueriesImpl) WindowForItem(ctx context.Context, itemID int64, which booking.Window) (*BookingView, error) {
	switch which {
	case booking.WindowLast:
		return q.bookings.FindLastForItem(ctx, itemID, q.clock.Now())
	case booking.WindowNext:
		return q.bookings.FindNextForItem(ctx, itemID, q.clock.Now())
	default:
		return nil, nil
	}
}

func (q *bookingQueriesImpl) EligibleBookings(ctx context.Context, itemID, authorID int64) ([]*BookingView, error) {
	return q.bookings.ListCompletedForComment(ctx, itemID, authorID, q.clock.Now())
}

// SelectWindow picks the LAST or NEXT booking out of an already loaded,
// non-rejected set with the same rules WindowForItem applies in the store.
func SelectWindow(bookings []*BookingView, which booking.Window, now time.Time) *BookingView {
	var picked *BookingView
	for _, b := range bookings {
		period := booking.RestorePeriod(b.Start, b.End)
		switch which {
		case booking.WindowLast:
			if period.EndedBefore(now) && (picked == nil || b.End.After(picked.End)) {
				picked = b
			}
		case booking.WindowNext:
			if period.StartsAfter(now) && (picked == nil || b.Start.Before(picked.Start)) {
				picked = b
			}
		default:
			return nil
		}
	}
	return picked
}
