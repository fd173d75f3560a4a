package request

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

// Tags reported by the booking date-range rule.
const (
	tagDatesRequired  = "dates_required"
	tagEndInPast      = "end_in_past"
	tagStartInPast    = "start_in_past"
	tagStartAfterEnd  = "start_after_end"
	tagStartEqualsEnd = "start_equals_end"
)

var tagMessages = map[string]string{
	tagDatesRequired:  "Start and end dates cannot be null",
	tagEndInPast:      "End date cannot be in the past",
	tagStartInPast:    "Start date cannot be in the past",
	tagStartAfterEnd:  "Start date cannot be after the end date",
	tagStartEqualsEnd: "Start date cannot be the same as the end date",
	"email":           "Invalid email format",
}

// RegisterValidators installs the request rules on gin's validator. clk is read
// on every validation; both dates must lie strictly after that instant.
func RegisterValidators(clk clock.Clock) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("unexpected binding validator engine")
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		validateBookingDates(sl, clk)
	}, CreateBookingRequest{})
	return nil
}

func validateBookingDates(sl validator.StructLevel, clk clock.Clock) {
	req, ok := sl.Current().Interface().(CreateBookingRequest)
	if !ok {
		return
	}

	if req.Start == nil || req.End == nil {
		sl.ReportError(req.Start, "start", "Start", tagDatesRequired, "")
		return
	}

	start, end := *req.Start, *req.End
	err := booking.RestorePeriod(start, end).ValidateFutureAt(clk.Now())
	if err == nil {
		_, err = booking.NewPeriod(start, end)
	}

	switch {
	case err == nil:
	case errs.Is(err, booking.ErrEndInPast):
		sl.ReportError(req.End, "end", "End", tagEndInPast, "")
	case errs.Is(err, booking.ErrStartInPast):
		sl.ReportError(req.Start, "start", "Start", tagStartInPast, "")
	case errs.Is(err, booking.ErrStartAfterEnd):
		sl.ReportError(req.Start, "start", "Start", tagStartAfterEnd, "")
	case errs.Is(err, booking.ErrStartEqualsEnd):
		sl.ReportError(req.Start, "start", "Start", tagStartEqualsEnd, "")
	}
}

// BindError turns a ShouldBind failure into a validation error with a message
// fit for the client.
func BindError(err error) error {
	var ve validator.ValidationErrors
	if !errs.As(err, &ve) || len(ve) == 0 {
		return errs.Validation("Invalid request body")
	}

	fe := ve[0]
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return errs.Validation(msg)
	}
	switch fe.Tag() {
	case "required":
		return errs.Validation(fe.Field() + " is required")
	case "min":
		return errs.Validation(fe.Field() + " must be at least " + fe.Param() + " characters long")
	default:
		return errs.Validation(fe.Field() + " is invalid")
	}
}
