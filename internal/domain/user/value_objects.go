package user

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"shareit/internal/pkg/errs"
)

const (
	minPasswordLength = 8
	maxEmailLength    = 512 // users.email column width
)

var (
	ErrInvalidEmail    = errs.Validation("Invalid email format")
	ErrPasswordTooWeak = errs.Validation("Password must be at least 8 characters long")
)

// domain part must carry a dot-separated TLD; net/mail alone accepts "a@b"
var domainRegex = regexp.MustCompile(`^[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a single bare address. Display names ("Bob <bob@x.io>") are rejected.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxEmailLength {
		return Email{}, ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return Email{}, ErrInvalidEmail
	}
	at := strings.LastIndexByte(s, '@')
	if !domainRegex.MatchString(s[at+1:]) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Password is a plain-text password that passed the length rule. It is only
// ever held long enough to be hashed.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
