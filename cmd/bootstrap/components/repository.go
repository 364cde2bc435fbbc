package components

import (
	"barberbook/internal/infra/readstore"
	repo_impl "barberbook/internal/infra/repository"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	writeSideModule,
	readSideModule,
)

var writeSideModule = fx.Module("repository/write",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewTenantRepository,
			fx.As(new(commands.TenantRepository)),
		),
		fx.Annotate(
			repo_impl.NewOwnerRepository,
			fx.As(new(commands.OwnerRepository)),
		),
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		// Staff and service repositories also serve the command-side reads
		fx.Annotate(
			repo_impl.NewStaffRepository,
			fx.As(new(commands.StaffRepository)),
			fx.As(new(commands.StaffReader)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
			fx.As(new(commands.ServiceReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewDepositSettingsRepository,
			fx.As(new(commands.DepositSettingsRepository)),
			fx.As(new(commands.DepositSettingsReader)),
		),
		fx.Annotate(
			repo_impl.NewDepositPaymentRepository,
			fx.As(new(commands.DepositPaymentRepository)),
		),
	),
)

var readSideModule = fx.Module("repository/read",
	fx.Provide(
		fx.Annotate(
			readstore.NewTenantReadStore,
			fx.As(new(queries.TenantReadStore)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewOwnerReadStore,
			fx.As(new(queries.OwnerReadStore)),
		),
		fx.Annotate(
			readstore.NewDepositSettingsReadStore,
			fx.As(new(queries.DepositSettingsReadStore)),
		),
	),
)
