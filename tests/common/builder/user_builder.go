//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Email        string
	Password     *string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	pw := "password123"
	return &UserBuilder{
		ID:       1,
		Name:     "Test User",
		Email:    "test@example.com",
		Password: &pw,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Name, email, u.PasswordHash)
}

func (u *UserBuilder) BuildCreateDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	hash := pgtype.Text{}
	if u.PasswordHash != "" {
		hash = pgtype.Text{String: u.PasswordHash, Valid: true}
	}
	return sqlc.Users{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: hash,
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(pw string) *UserBuilder {
	u.Password = &pw
	return u
}

func (u *UserBuilder) WithoutPassword() *UserBuilder {
	u.Password = nil
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}
