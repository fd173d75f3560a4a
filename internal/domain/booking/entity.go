package booking

import (
	"shareit/internal/pkg/errs"
)

var (
	ErrItemUnavailable = errs.Validation("Item is not available")
	// Booking one's own item is reported as a missing target, not as a permission failure.
	ErrSelfBooking     = errs.NotFound("User is not the owner of this booking")
	ErrNotItemOwner    = errs.Forbidden("You are not allowed to approve this booking")
	ErrAlreadyApproved = errs.Validation("The status has already been approved")
	ErrBookingNotFound = errs.NotFound("Booking not found")
)

// ItemSpec is the part of an item a booking decision depends on.
type ItemSpec struct {
	ID        int64
	OwnerID   int64
	Available bool
}

type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	period   Period
	status   Status
}

// NewBooking validates the stored-state rules for a new booking and returns it
// in WAITING status. The id is assigned by the store.
func NewBooking(bookerID int64, item ItemSpec, period Period) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrSelfBooking
	}

	return &Booking{
		itemID:   item.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, bookerID int64, period Period, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   status,
	}
}

// Decide applies the owner's approval decision. Only an APPROVED booking is
// guarded; a REJECTED one may be decided again.
func (b *Booking) Decide(actorID, itemOwnerID int64, approved bool) error {
	if actorID != itemOwnerID {
		return ErrNotItemOwner
	}
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}

	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) WithID(id int64) *Booking {
	cp := *b
	cp.id = id
	return &cp
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) BookerID() int64 { return b.bookerID }
func (b *Booking) Period() Period  { return b.period }
func (b *Booking) Status() Status  { return b.status }
