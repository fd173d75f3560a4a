package shared

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	ItemRequests() ItemRequestRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads resolve the entities a command validates against. Missing rows
// surface as infra.KindNotFound.
type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	UserCredentialsByEmail(ctx context.Context, email string) (*CredentialSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	// BookingForDecision locks the booking row until the surrounding transaction ends.
	BookingForDecision(ctx context.Context, id int64) (*BookingSnapshot, error)
	ItemRequestByID(ctx context.Context, id int64) (*ItemRequestSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status booking.Status) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *itemrequest.ItemRequest) (int64, error)
}
