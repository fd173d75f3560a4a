package auth

import (
	"shareit/internal/domain/user"
	"shareit/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.Unauthorized("Invalid email or password")

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only checks the email shape. Password strength is a signup
// rule and is not re-applied at login.
func NewCredentials(emailStr, password string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if password == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
