package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrPeriodMissing  = errs.Validation("Start and end dates cannot be null")
	ErrEndInPast      = errs.Validation("End date cannot be in the past")
	ErrStartInPast    = errs.Validation("Start date cannot be in the past")
	ErrStartAfterEnd  = errs.Validation("Start date cannot be after the end date")
	ErrStartEqualsEnd = errs.Validation("Start date cannot be the same as the end date")
)

// Period is a booking interval with start strictly before end.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrPeriodMissing
	}
	if start.After(end) {
		return Period{}, ErrStartAfterEnd
	}
	if start.Equal(end) {
		return Period{}, ErrStartEqualsEnd
	}
	return Period{start: start, end: end}, nil
}

// RestorePeriod rebuilds a stored period without re-validating it.
func RestorePeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

// ValidateFutureAt checks that both ends lie strictly after now. The end is
// checked first.
func (p Period) ValidateFutureAt(now time.Time) error {
	if !p.end.After(now) {
		return ErrEndInPast
	}
	if !p.start.After(now) {
		return ErrStartInPast
	}
	return nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// EndedBefore and StartsAfter are the LAST and NEXT window predicates. A
// booking ending exactly at now has not ended.
func (p Period) EndedBefore(now time.Time) bool { return p.end.Before(now) }
func (p Period) StartsAfter(now time.Time) bool { return p.start.After(now) }
