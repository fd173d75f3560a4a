//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

// BaseTime is the fixed "now" unit tests run against.
var BaseTime = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID          int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
	Start       time.Time
	End         time.Time
	Status      booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          1000,
		ItemID:      10,
		ItemName:    "Drill",
		ItemOwnerID: 1,
		BookerID:    2,
		BookerName:  "Booker",
		Start:       BaseTime.Add(24 * time.Hour),
		End:         BaseTime.Add(48 * time.Hour),
		Status:      booking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.ItemID, b.BookerID, booking.RestorePeriod(b.Start, b.End), b.Status)
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	start, end := b.Start, b.End
	itemID := b.ItemID
	return reqdto.CreateBookingRequest{
		ItemID: &itemID,
		Start:  &start,
		End:    &end,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.BookingDetails {
	return sqlc.BookingDetails{
		ID:          b.ID,
		StartDate:   pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndDate:     pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:      sqlc.BookingStatus(b.Status),
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.ItemOwnerID,
		BookerID:    b.BookerID,
		BookerName:  b.BookerName,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.ItemOwnerID,
		BookerID:    b.BookerID,
		BookerName:  b.BookerName,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ItemID:      b.ItemID,
		BookerID:    b.BookerID,
		ItemOwnerID: b.ItemOwnerID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItem(itemID, ownerID int64) *BookingBuilder {
	b.ItemID = itemID
	b.ItemOwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithBooker(bookerID int64) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

// Between sets the period relative to BaseTime.
func (b *BookingBuilder) Between(fromNow, toNow time.Duration) *BookingBuilder {
	b.Start = BaseTime.Add(fromNow)
	b.End = BaseTime.Add(toNow)
	return b
}

type ItemRequestBuilder struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}

func NewItemRequestBuilder() *ItemRequestBuilder {
	return &ItemRequestBuilder{
		ID:          50,
		Description: "Need a ladder for the weekend",
		RequestorID: 2,
		Created:     BaseTime,
	}
}

func (b *ItemRequestBuilder) BuildView() *queries.ItemRequestView {
	return &queries.ItemRequestView{
		ID:          b.ID,
		Description: b.Description,
		RequestorID: b.RequestorID,
		Created:     b.Created,
		Items:       []*queries.ItemView{},
	}
}

func (b *ItemRequestBuilder) BuildInfra() sqlc.ItemRequests {
	return sqlc.ItemRequests{
		ID:          b.ID,
		Description: b.Description,
		RequestorID: b.RequestorID,
		Created:     pgtype.Timestamptz{Time: b.Created, Valid: true},
	}
}

func (b *ItemRequestBuilder) WithID(id int64) *ItemRequestBuilder {
	b.ID = id
	return b
}

func (b *ItemRequestBuilder) WithRequestor(id int64) *ItemRequestBuilder {
	b.RequestorID = id
	return b
}
