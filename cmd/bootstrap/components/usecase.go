package components

import (
	"barberbook/internal/pkg/clock"
	"barberbook/internal/usecase"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

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
		queries.NewTenantQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewCustomerQueries,
		queries.NewOwnerQueries,
		queries.NewDepositQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewCustomerTokenValidator,
		usecase.NewOwnerTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCustomerAuth,
		commands.NewOwnerAuth,
		commands.NewBookingCommands,
		commands.NewDepositCommands,
		commands.NewTenantAdminCommands,
	),
)
