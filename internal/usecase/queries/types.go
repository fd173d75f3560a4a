package queries

import (
	"math"
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrNegativeFrom    = errs.Validation("Parameter from must not be negative")
	ErrNonPositiveSize = errs.Validation("Parameter size must be positive")
	ErrFromTooLarge    = errs.Validation("Parameter from is too large")
	ErrSizeTooLarge    = errs.Validation("Parameter size is too large")
)

// maxPageParam bounds from and size to what the store accepts for LIMIT/OFFSET.
const maxPageParam = math.MaxInt32

// Page selects a slice of a listing from the from/size pair. The page index is
// from/size (integer division), so from acts as a row offset only when it is a
// multiple of size. A missing from or size means the whole listing.
type Page struct {
	From *int
	Size *int
}

func NewPage(from, size *int) (Page, error) {
	if from != nil && *from < 0 {
		return Page{}, ErrNegativeFrom
	}
	if size != nil && *size <= 0 {
		return Page{}, ErrNonPositiveSize
	}
	if from != nil && *from > maxPageParam {
		return Page{}, ErrFromTooLarge
	}
	if size != nil && *size > maxPageParam {
		return Page{}, ErrSizeTooLarge
	}
	return Page{From: from, Size: size}, nil
}

func Unpaged() Page {
	return Page{}
}

func (p Page) IsPaged() bool {
	return p.From != nil && p.Size != nil && *p.Size > 0
}

// Limit is nil for an unpaged listing.
func (p Page) Limit() *int {
	if !p.IsPaged() {
		return nil
	}
	size := *p.Size
	return &size
}

func (p Page) Offset() int {
	if !p.IsPaged() {
		return 0
	}
	return (*p.From / *p.Size) * *p.Size
}

type BookingView struct {
	ID          int64     `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	ItemID      int64     `json:"item_id"`
	ItemName    string    `json:"item_name"`
	ItemOwnerID int64     `json:"item_owner_id"`
	BookerID    int64     `json:"booker_id"`
	BookerName  string    `json:"booker_name"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// ItemDetailView is an item with its comments. The booking windows are only
// filled for the item owner.
type ItemDetailView struct {
	ItemView
	LastBooking *BookingView   `json:"last_booking,omitempty"`
	NextBooking *BookingView   `json:"next_booking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"item_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type ItemRequestView struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	RequestorID int64       `json:"requestor_id"`
	Created     time.Time   `json:"created"`
	Items       []*ItemView `json:"items"`
}
