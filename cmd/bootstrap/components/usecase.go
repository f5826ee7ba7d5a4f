package components

import (
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

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
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGarageQueries,
		queries.NewCarQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		fx.Annotate(
			commands.NewTokenValidator,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewReviewCommands,
		commands.NewMaintenanceCommands,
	),
)
