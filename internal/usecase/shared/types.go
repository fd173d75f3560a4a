package shared

import "time"

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type CredentialSnapshot struct {
	ID           int64
	Email        string
	PasswordHash string
}

type ItemSnapshot struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type BookingSnapshot struct {
	ID          int64
	ItemID      int64
	BookerID    int64
	ItemOwnerID int64
	Start       time.Time
	End         time.Time
	Status      string
}

type ItemRequestSnapshot struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}
