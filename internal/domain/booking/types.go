package booking

import (
	"strings"

	"shareit/internal/pkg/errs"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// State classifies bookings relative to now or to their status for listings.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func (s State) String() string {
	return string(s)
}

func ParseState(raw string) (State, error) {
	switch st := State(strings.ToUpper(raw)); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, nil
	default:
		return "", errs.Validation("Unknown state: " + raw)
	}
}

// Window selects the last finished or the next upcoming booking of an item.
type Window string

const (
	WindowLast    Window = "LAST"
	WindowNext    Window = "NEXT"
	WindowUnknown Window = ""
)

func ParseWindow(raw string) Window {
	switch w := Window(strings.ToUpper(raw)); w {
	case WindowLast, WindowNext:
		return w
	default:
		return WindowUnknown
	}
}
