package readstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetVisibleBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.GetVisibleBookingParams) (sqlc.BookingDetails, error)
	GetLastBookingForItem(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLastBookingForItemParams) (sqlc.BookingDetails, error)
	GetNextBookingForItem(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNextBookingForItemParams) (sqlc.BookingDetails, error)
	ListBookerBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookerBookingsParams) ([]sqlc.BookingDetails, error)
	ListBookerBookingsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookerBookingsByStatusParams) ([]sqlc.BookingDetails, error)
	ListBookerCurrentBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookerCurrentBookingsParams) ([]sqlc.BookingDetails, error)
	ListBookerFutureBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookerFutureBookingsParams) ([]sqlc.BookingDetails, error)
	ListBookerPastBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookerPastBookingsParams) ([]sqlc.BookingDetails, error)
	ListOwnerBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerBookingsParams) ([]sqlc.BookingDetails, error)
	ListOwnerBookingsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerBookingsByStatusParams) ([]sqlc.BookingDetails, error)
	ListOwnerCurrentBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerCurrentBookingsParams) ([]sqlc.BookingDetails, error)
	ListOwnerFutureBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerFutureBookingsParams) ([]sqlc.BookingDetails, error)
	ListOwnerPastBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerPastBookingsParams) ([]sqlc.BookingDetails, error)
	ListBookingsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []int64) ([]sqlc.BookingDetails, error)
	ListCompletedBookingsForComment(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletedBookingsForCommentParams) ([]sqlc.BookingDetails, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindVisible(ctx context.Context, actorID, bookingID int64) (*queries.BookingView, error) {
	row, err := r.queries.GetVisibleBooking(ctx, r.db, sqlc.GetVisibleBookingParams{
		ID:      bookingID,
		ActorID: actorID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingView(row), nil
}

// ListByBooker dispatches on state to the matching query. A nil limit returns
// every row from offset.
func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID int64, state booking.State, now time.Time, limit *int, offset int) ([]*queries.BookingView, error) {
	rowLimit := pgconv.Int4Ptr(limit)
	rowOffset := pgconv.ClampInt32(offset)

	var (
		rows []sqlc.BookingDetails
		err  error
	)
	switch state {
	case booking.StateAll:
		rows, err = r.queries.ListBookerBookings(ctx, r.db, sqlc.ListBookerBookingsParams{
			BookerID: bookerID, RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StateCurrent:
		rows, err = r.queries.ListBookerCurrentBookings(ctx, r.db, sqlc.ListBookerCurrentBookingsParams{
			BookerID: bookerID, Now: pgconv.TimeToPgtype(now), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StatePast:
		rows, err = r.queries.ListBookerPastBookings(ctx, r.db, sqlc.ListBookerPastBookingsParams{
			BookerID: bookerID, Now: pgconv.TimeToPgtype(now), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StateFuture:
		rows, err = r.queries.ListBookerFutureBookings(ctx, r.db, sqlc.ListBookerFutureBookingsParams{
			BookerID: bookerID, Now: pgconv.TimeToPgtype(now), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StateWaiting, booking.StateRejected:
		rows, err = r.queries.ListBookerBookingsByStatus(ctx, r.db, sqlc.ListBookerBookingsByStatusParams{
			BookerID: bookerID, Status: stateStatus(state), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	default:
		return nil, infra.WrapRepoErr("unsupported booking state "+state.String(), nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booker bookings", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID int64, state booking.State, now time.Time, limit *int, offset int) ([]*queries.BookingView, error) {
	rowLimit := pgconv.Int4Ptr(limit)
	rowOffset := pgconv.ClampInt32(offset)

	var (
		rows []sqlc.BookingDetails
		err  error
	)
	switch state {
	case booking.StateAll:
		rows, err = r.queries.ListOwnerBookings(ctx, r.db, sqlc.ListOwnerBookingsParams{
			OwnerID: ownerID, RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StateCurrent:
		rows, err = r.queries.ListOwnerCurrentBookings(ctx, r.db, sqlc.ListOwnerCurrentBookingsParams{
			OwnerID: ownerID, Now: pgconv.TimeToPgtype(now), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StatePast:
		rows, err = r.queries.ListOwnerPastBookings(ctx, r.db, sqlc.ListOwnerPastBookingsParams{
			OwnerID: ownerID, Now: pgconv.TimeToPgtype(now), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StateFuture:
		rows, err = r.queries.ListOwnerFutureBookings(ctx, r.db, sqlc.ListOwnerFutureBookingsParams{
			OwnerID: ownerID, Now: pgconv.TimeToPgtype(now), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	case booking.StateWaiting, booking.StateRejected:
		rows, err = r.queries.ListOwnerBookingsByStatus(ctx, r.db, sqlc.ListOwnerBookingsByStatusParams{
			OwnerID: ownerID, Status: stateStatus(state), RowLimit: rowLimit, RowOffset: rowOffset,
		})
	default:
		return nil, infra.WrapRepoErr("unsupported booking state "+state.String(), nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner bookings", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*queries.BookingView, error) {
	if len(itemIDs) == 0 {
		return []*queries.BookingView{}, nil
	}
	rows, err := r.queries.ListBookingsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by items", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*queries.BookingView, error) {
	row, err := r.queries.GetLastBookingForItem(ctx, r.db, sqlc.GetLastBookingForItemParams{
		ItemID: itemID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find last booking", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*queries.BookingView, error) {
	row, err := r.queries.GetNextBookingForItem(ctx, r.db, sqlc.GetNextBookingForItemParams{
		ItemID: itemID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find next booking", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListCompletedForComment(ctx context.Context, itemID, bookerID int64, now time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListCompletedBookingsForComment(ctx, r.db, sqlc.ListCompletedBookingsForCommentParams{
		ItemID:   itemID,
		BookerID: bookerID,
		Now:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completed bookings", err)
	}
	return toBookingViews(rows), nil
}

func stateStatus(state booking.State) sqlc.BookingStatus {
	if state == booking.StateRejected {
		return sqlc.BookingStatusREJECTED
	}
	return sqlc.BookingStatusWAITING
}

func toBookingView(row sqlc.BookingDetails) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		Start:       pgconv.TimeFromPgtype(row.StartDate),
		End:         pgconv.TimeFromPgtype(row.EndDate),
		Status:      string(row.Status),
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		ItemOwnerID: row.ItemOwnerID,
		BookerID:    row.BookerID,
		BookerName:  row.BookerName,
	}
}

func toBookingViews(rows []sqlc.BookingDetails) []*queries.BookingView {
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(row)
	}
	return views
}
