package commands

import (
	"context"
	"fmt"
	"log/slog"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/deposit"
	"barberbook/internal/domain/service"
	"barberbook/internal/domain/staff"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/infra/db"
	"barberbook/internal/infra/payment"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/queries"
	"barberbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrServiceNotFound         = errs.New("service not found")
	ErrStaffNotFound           = errs.New("staff member not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrStaffTenantMismatch     = errs.New("staff member does not belong to the service's tenant")
	ErrNotBookingParticipant   = errs.New("booking belongs to another party")
	ErrCancellationPolicy      = errs.New("cancellation window has closed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrPaymentFailure          = errs.New("payment intent creation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingRepository interface {
	// Create persists a new booking. No staff/time uniqueness constraint
	// exists here: two concurrent creations for the same slot both succeed.
	// Callers must not assume slot exclusivity.
	Create(ctx context.Context, qx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateCancelled(ctx context.Context, b *booking.Booking) error
}

type DepositPaymentRepository interface {
	Create(ctx context.Context, qx db.DBTX, p *deposit.Payment) error
}

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
}

type StaffReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*staff.Member, error)
}

type DepositSettingsReader interface {
	// FindByTenant returns KindNotFound when the tenant never configured
	// deposits; callers fall back to deposit.DefaultSettings.
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (deposit.Settings, error)
}

type PaymentIntents interface {
	CreateIntent(ctx context.Context, amountCents int64, meta payment.Metadata) (string, error)
}

type Mailer interface {
	Send(to, subject, body string) error
}

// CancelRequest carries the acting party for the audit trail. Ownership is
// checked against RequesterID (the customer) or RequesterTenantID (the
// owner's tenant) depending on the actor.
type CancelRequest struct {
	BookingID         uuid.UUID
	Actor             booking.CancelActor
	RequesterID       uuid.UUID
	RequesterTenantID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, customerID uuid.UUID, customerEmail string) (*queries.BookingView, error)
	Cancel(ctx context.Context, req CancelRequest) error
}

type bookingCommandsImpl struct {
	bookingRepo     BookingRepository
	paymentRepo     DepositPaymentRepository
	serviceReader   ServiceReader
	staffReader     StaffReader
	settingsReader  DepositSettingsReader
	paymentIntents  PaymentIntents
	mailer          Mailer
	bookingQueries  queries.BookingQueries
	pool            *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	paymentRepo DepositPaymentRepository,
	serviceReader ServiceReader,
	staffReader StaffReader,
	settingsReader DepositSettingsReader,
	paymentIntents PaymentIntents,
	mailer Mailer,
	bookingQueries queries.BookingQueries,
	pool *pgxpool.Pool,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		paymentRepo:    paymentRepo,
		serviceReader:  serviceReader,
		staffReader:    staffReader,
		settingsReader: settingsReader,
		paymentIntents: paymentIntents,
		mailer:         mailer,
		bookingQueries: bookingQueries,
		pool:           pool,
		clock:          clk,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, customerID uuid.UUID, customerEmail string) (*queries.BookingView, error) {
	appointmentAt, err := req.ParseAppointment()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	serviceEntity, err := b.serviceReader.FindByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	staffEntity, err := b.staffReader.FindByID(ctx, req.StaffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if staffEntity.TenantID() != serviceEntity.TenantID() {
		return nil, ErrStaffTenantMismatch
	}

	settings := b.loadSettings(ctx, serviceEntity.TenantID())
	depositCents := settings.DepositCents(serviceEntity.PriceCents())

	bookingEntity, err := booking.NewBooking(b.clock.Now(), booking.NewBookingInput{
		TenantID:      serviceEntity.TenantID(),
		CustomerID:    customerID,
		ServiceID:     serviceEntity.ID(),
		StaffID:       staffEntity.ID(),
		CustomerEmail: customerEmail,
		ServiceName:   serviceEntity.Name(),
		StaffName:     staffEntity.Name(),
		AppointmentAt: appointmentAt,
		DisplayDate:   req.AppointmentDate,
		DisplayTime:   req.AppointmentTime,
		DepositCents:  depositCents,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var depositPayment *deposit.Payment
	if depositCents > 0 {
		intentID, intentErr := b.paymentIntents.CreateIntent(ctx, depositCents, payment.Metadata{
			BookingID:  bookingEntity.ID(),
			TenantID:   bookingEntity.TenantID(),
			CustomerID: customerID,
		})
		if intentErr != nil {
			return nil, errs.Mark(intentErr, ErrPaymentFailure)
		}
		depositPayment = deposit.NewPayment(bookingEntity.ID(), customerID, bookingEntity.TenantID(), depositCents, intentID)
	}

	_, err = shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (struct{}, error) {
		if createErr := b.bookingRepo.Create(ctx, tx, bookingEntity); createErr != nil {
			return struct{}{}, createErr
		}
		if depositPayment != nil {
			if payErr := b.paymentRepo.Create(ctx, tx, depositPayment); payErr != nil {
				return struct{}{}, payErr
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.sendConfirmationMail(bookingEntity, settings, depositCents)

	// Read-after-write: return the view the read side will serve
	view, err := b.bookingQueries.GetByID(ctx, bookingEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, req CancelRequest) error {
	bookingEntity, err := b.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch req.Actor {
	case booking.CancelledByCustomer:
		if bookingEntity.CustomerID() != req.RequesterID {
			return ErrNotBookingParticipant
		}
	case booking.CancelledByTenant:
		if bookingEntity.TenantID() != req.RequesterTenantID {
			return ErrNotBookingParticipant
		}
	default:
		return errs.Mark(booking.ErrInvalidCancelActor, ErrDomainValidation)
	}

	if err := bookingEntity.Cancel(b.clock.Now(), req.Actor); err != nil {
		return errs.Mark(err, ErrCancellationPolicy)
	}

	if err := b.bookingRepo.UpdateCancelled(ctx, bookingEntity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.sendCancellationMail(bookingEntity)
	return nil
}

func (b *bookingCommandsImpl) loadSettings(ctx context.Context, tenantID uuid.UUID) deposit.Settings {
	settings, err := b.settingsReader.FindByTenant(ctx, tenantID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to load deposit settings, proceeding without deposit", "tenant_id", tenantID, "error", err.Error())
		}
		return deposit.DefaultSettings()
	}
	return settings
}

// Mail is best-effort: a down SMTP relay never fails the booking.
func (b *bookingCommandsImpl) sendConfirmationMail(entity *booking.Booking, settings deposit.Settings, depositCents int64) {
	body := fmt.Sprintf(
		"Your appointment for %s with %s on %s at %s is confirmed.",
		entity.ServiceName(), entity.StaffName(), entity.DisplayDate(), entity.DisplayTime(),
	)
	if depositCents > 0 {
		body += fmt.Sprintf("\n\nA deposit of $%.2f is required to hold your spot. %s",
			float64(depositCents)/100, settings.RefundMessage())
	}
	if err := b.mailer.Send(entity.CustomerEmail(), "Booking confirmed", body); err != nil {
		slog.Warn("failed to send confirmation mail", "booking_id", entity.ID(), "error", err.Error())
	}
}

func (b *bookingCommandsImpl) sendCancellationMail(entity *booking.Booking) {
	body := fmt.Sprintf(
		"Your appointment for %s with %s on %s at %s has been cancelled.",
		entity.ServiceName(), entity.StaffName(), entity.DisplayDate(), entity.DisplayTime(),
	)
	if err := b.mailer.Send(entity.CustomerEmail(), "Booking cancelled", body); err != nil {
		slog.Warn("failed to send cancellation mail", "booking_id", entity.ID(), "error", err.Error())
	}
}
