package components

import (
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/jwt"
	"shareit/internal/usecase"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(s *jwt.Service) commands.TokenIssuer {
		return s
	},
	func(q queries.BookingQueries) commands.CommentEligibility {
		return q
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewUserCommands,
		commands.NewItemCommands,
		commands.NewItemRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewItemRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
	fx.Invoke(reqdto.RegisterValidators),
)
