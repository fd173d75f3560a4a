package commands

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
)

// CommentEligibility answers which finished bookings let an author comment on an item.
type CommentEligibility interface {
	EligibleBookings(ctx context.Context, itemID, authorID int64) ([]*queries.BookingView, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}

// notFoundAs replaces a store-level not-found with the user-facing domain error.
func notFoundAs(err, domainErr error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return domainErr
	}
	return err
}
