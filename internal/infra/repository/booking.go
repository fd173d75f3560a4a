package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	id, err := r.queries.CreateBooking(ctx, tx, sqlc.CreateBookingParams{
		StartDate: pgconv.TimeToPgtype(b.Period().Start()),
		EndDate:   pgconv.TimeToPgtype(b.Period().End()),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    sqlc.BookingStatus(b.Status()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status booking.Status) error {
	err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:     id,
		Status: sqlc.BookingStatus(status),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
