package request

import (
	"time"
)

// CreateBookingRequest carries RFC 3339 timestamps. The date-range rule is
// registered on the binding engine by RegisterValidators.
type CreateBookingRequest struct {
	ItemID *int64     `json:"itemId" binding:"required"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}
