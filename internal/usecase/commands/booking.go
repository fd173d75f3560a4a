package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/usecase/shared"
)

type BookingCommands interface {
	Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*booking.Booking, error)
	SetApproval(ctx context.Context, actorID, bookingID int64, approved bool) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

// Create stores a WAITING booking. The future-dates rule is checked at the
// request boundary; here only the ordering of the period is enforced.
func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*booking.Booking, error) {
	period, err := booking.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, bookerID); derr != nil {
			return notFoundAs(derr, user.ErrUserNotFound)
		}

		it, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			return notFoundAs(derr, item.ErrItemNotFound)
		}

		b, derr := booking.NewBooking(bookerID, booking.ItemSpec{
			ID:        it.ID,
			OwnerID:   it.OwnerID,
			Available: it.Available,
		}, period)
		if derr != nil {
			return derr
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		created = b.WithID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", created.ID(),
		"item_id", created.ItemID(),
		"booker_id", created.BookerID())
	return created, nil
}

// SetApproval reads the booking under a row lock so concurrent decisions on the
// same booking are serialized.
func (c *bookingCommandsImpl) SetApproval(ctx context.Context, actorID, bookingID int64, approved bool) (*booking.Booking, error) {
	var decided *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingForDecision(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, booking.ErrBookingNotFound)
		}

		b := booking.ReconstructBooking(
			snap.ID,
			snap.ItemID,
			snap.BookerID,
			booking.RestorePeriod(snap.Start, snap.End),
			booking.Status(snap.Status),
		)
		if derr = b.Decide(actorID, snap.ItemOwnerID, approved); derr != nil {
			return derr
		}

		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b.ID(), b.Status()); derr != nil {
			return derr
		}
		decided = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking decided",
		"booking_id", decided.ID(),
		"status", decided.Status().String(),
		"owner_id", actorID)
	return decided, nil
}
