package user

import (
	"strings"

	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
)

var (
	ErrUserNotFound     = errs.NotFound("User not found")
	ErrEmailTaken       = errs.Conflict("Email already exists")
	ErrUserHasRelations = errs.Conflict("User has related data")
	ErrBlankName        = errs.Validation("Name must not be blank")
)

type User struct {
	id           int64
	name         string
	email        Email
	passwordHash string
}

// NewUser builds a user before it is stored. passwordHash may be empty for
// users that only act through the X-Sharer-User-Id header.
func NewUser(name string, email Email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}, nil
}

func ReconstructUser(id int64, name string, email Email) *User {
	return &User{id: id, name: name, email: email}
}

// Patch applies the non-nil fields. It reports whether the email changed so the
// caller can check uniqueness.
func (u *User) Patch(name, email *string) (bool, error) {
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return false, ErrBlankName
		}
		u.name = n
	}

	emailChanged := patch.Changed(email, u.email.Value())
	if emailChanged {
		e, err := NewEmail(*email)
		if err != nil {
			return false, err
		}
		emailChanged = e != u.email
		u.email = e
	}
	return emailChanged, nil
}

func (u *User) WithID(id int64) *User {
	cp := *u
	cp.id = id
	return &cp
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
