package errs

import cr "github.com/cockroachdb/errors"

// Kinds shared by every layer. The HTTP layer maps them to status codes.
var (
	ErrNotFound     = cr.New("not found")
	ErrValidation   = cr.New("validation failed")
	ErrForbidden    = cr.New("forbidden")
	ErrConflict     = cr.New("conflict")
	ErrUnauthorized = cr.New("unauthorized")
)

// NotFound builds a user-facing error whose message is relayed to the client
// unchanged. The other constructors differ only in the kind they mark.
func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func Forbidden(msg string) error {
	return cr.Mark(cr.New(msg), ErrForbidden)
}

func Conflict(msg string) error {
	return cr.Mark(cr.New(msg), ErrConflict)
}

func Unauthorized(msg string) error {
	return cr.Mark(cr.New(msg), ErrUnauthorized)
}

// IsDomain reports whether err carries one of the kinds above.
func IsDomain(err error) bool {
	return cr.IsAny(err, ErrNotFound, ErrValidation, ErrForbidden, ErrConflict, ErrUnauthorized)
}
