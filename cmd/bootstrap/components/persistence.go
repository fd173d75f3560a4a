package components

import (
	"shareit/internal/infra/readstore"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Item
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemReadQueries)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// Comment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommentReadQueries)),
		),
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
		// ItemRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemRequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewItemRequestReadStore,
			fx.As(new(queries.ItemRequestReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
