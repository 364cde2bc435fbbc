//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/deposit"
	"barberbook/internal/domain/service"
	"barberbook/internal/domain/staff"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/infra/db"
	"barberbook/internal/infra/payment"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	byID      map[uuid.UUID]*booking.Booking
	cancelled []*booking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[uuid.UUID]*booking.Booking{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	r.byID[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (r *fakeBookingRepo) UpdateCancelled(_ context.Context, b *booking.Booking) error {
	r.cancelled = append(r.cancelled, b)
	return nil
}

type fakeServiceReader struct {
	byID map[uuid.UUID]*service.Service
}

func (r *fakeServiceReader) FindByID(_ context.Context, id uuid.UUID) (*service.Service, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return s, nil
}

type fakeStaffReader struct {
	byID map[uuid.UUID]*staff.Member
}

func (r *fakeStaffReader) FindByID(_ context.Context, id uuid.UUID) (*staff.Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)
	}
	return m, nil
}

type fakeSettingsReader struct {
	settings *deposit.Settings
}

func (r *fakeSettingsReader) FindByTenant(_ context.Context, _ uuid.UUID) (deposit.Settings, error) {
	if r.settings == nil {
		return deposit.Settings{}, infra.WrapRepoErr("settings not found", nil, infra.KindNotFound)
	}
	return *r.settings, nil
}

type fakePaymentRepo struct {
	created []*deposit.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, p *deposit.Payment) error {
	r.created = append(r.created, p)
	return nil
}

type fakeIntents struct {
	err  error
	meta []payment.Metadata
}

func (f *fakeIntents) CreateIntent(_ context.Context, _ int64, meta payment.Metadata) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.meta = append(f.meta, meta)
	return "pi_test", nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(_, subject, _ string) error {
	f.sent = append(f.sent, subject)
	return nil
}

type bookingFixture struct {
	commands    commands.BookingCommands
	bookingRepo *fakeBookingRepo
	mailer      *fakeMailer
	intents     *fakeIntents
	clock       *clock.MockClock
	tenantID    uuid.UUID
	serviceID   uuid.UUID
	staffID     uuid.UUID
}

func newBookingFixture(t *testing.T, settings *deposit.Settings, intents *fakeIntents) *bookingFixture {
	t.Helper()

	tenantID := uuid.New()
	svc, err := service.NewService(tenantID, "Haircut", 45, 10000, "Cuts")
	require.NoError(t, err)
	hours, err := staff.NewWorkingHours(9, 17, nil)
	require.NoError(t, err)
	member, err := staff.NewMember(tenantID, "Alex", hours)
	require.NoError(t, err)

	bookingRepo := newFakeBookingRepo()
	mailer := &fakeMailer{}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	cmds := commands.NewBookingCommands(
		bookingRepo,
		&fakePaymentRepo{},
		&fakeServiceReader{byID: map[uuid.UUID]*service.Service{svc.ID(): svc}},
		&fakeStaffReader{byID: map[uuid.UUID]*staff.Member{member.ID(): member}},
		&fakeSettingsReader{settings: settings},
		intents,
		mailer,
		nil, // read side unused on these paths
		nil, // pool unused on these paths
		clk,
	)

	return &bookingFixture{
		commands:    cmds,
		bookingRepo: bookingRepo,
		mailer:      mailer,
		intents:     intents,
		clock:       clk,
		tenantID:    tenantID,
		serviceID:   svc.ID(),
		staffID:     member.ID(),
	}
}

func (f *bookingFixture) validRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:           f.serviceID,
		StaffID:             f.staffID,
		AppointmentDate:     "2026-09-03",
		AppointmentTime:     "10:00 AM",
		AppointmentDateTime: "2026-09-03T10:00:00Z",
	}
}

func (f *bookingFixture) seedBooking(t *testing.T, customerID uuid.UUID) *booking.Booking {
	t.Helper()
	entity, err := booking.NewBooking(f.clock.Now(), booking.NewBookingInput{
		TenantID:      f.tenantID,
		CustomerID:    customerID,
		ServiceID:     f.serviceID,
		StaffID:       f.staffID,
		CustomerEmail: "customer@example.com",
		ServiceName:   "Haircut",
		StaffName:     "Alex",
		AppointmentAt: f.clock.Now().Add(48 * time.Hour),
		DisplayDate:   "2026-09-03",
		DisplayTime:   "10:00 AM",
	})
	require.NoError(t, err)
	f.bookingRepo.byID[entity.ID()] = entity
	return entity
}

func TestBookingCreateValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("不正なタイムスタンプはNG", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		req := f.validRequest()
		req.AppointmentDateTime = "tomorrow at ten"

		_, err := f.commands.Create(ctx, req, uuid.New(), "customer@example.com")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("存在しないサービスはNG", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		req := f.validRequest()
		req.ServiceID = uuid.New()

		_, err := f.commands.Create(ctx, req, uuid.New(), "customer@example.com")
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("存在しないスタッフはNG", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		req := f.validRequest()
		req.StaffID = uuid.New()

		_, err := f.commands.Create(ctx, req, uuid.New(), "customer@example.com")
		assert.ErrorIs(t, err, commands.ErrStaffNotFound)
	})

	t.Run("他テナントのスタッフはNG", func(t *testing.T) {
		f := newMismatchedStaffFixture(t)

		_, err := f.commands.Create(ctx, f.validRequest(), uuid.New(), "customer@example.com")
		assert.ErrorIs(t, err, commands.ErrStaffTenantMismatch)
	})

	t.Run("過去の予約はNG", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		req := f.validRequest()
		req.AppointmentDateTime = "2026-08-30T10:00:00Z"

		_, err := f.commands.Create(ctx, req, uuid.New(), "customer@example.com")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("決済インテント失敗は予約を作らない", func(t *testing.T) {
		settings := deposit.Settings{Enabled: true, Type: deposit.TypePercentage, Amount: 25, RefundPolicy: deposit.Refund24h}
		f := newBookingFixture(t, &settings, &fakeIntents{err: errors.New("stripe down")})

		_, err := f.commands.Create(ctx, f.validRequest(), uuid.New(), "customer@example.com")
		assert.ErrorIs(t, err, commands.ErrPaymentFailure)
		assert.Empty(t, f.bookingRepo.byID)
		assert.Empty(t, f.mailer.sent)
	})
}

// newMismatchedStaffFixture serves a staff member from a different tenant than
// the service.
func newMismatchedStaffFixture(t *testing.T) *bookingFixture {
	t.Helper()

	tenantID := uuid.New()
	svc, err := service.NewService(tenantID, "Haircut", 45, 10000, "Cuts")
	require.NoError(t, err)
	hours, err := staff.NewWorkingHours(9, 17, nil)
	require.NoError(t, err)
	foreign, err := staff.NewMember(uuid.New(), "Alex", hours)
	require.NoError(t, err)

	bookingRepo := newFakeBookingRepo()
	mailer := &fakeMailer{}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	cmds := commands.NewBookingCommands(
		bookingRepo,
		&fakePaymentRepo{},
		&fakeServiceReader{byID: map[uuid.UUID]*service.Service{svc.ID(): svc}},
		&fakeStaffReader{byID: map[uuid.UUID]*staff.Member{foreign.ID(): foreign}},
		&fakeSettingsReader{},
		&fakeIntents{},
		mailer,
		nil,
		nil,
		clk,
	)

	return &bookingFixture{
		commands:    cmds,
		bookingRepo: bookingRepo,
		mailer:      mailer,
		clock:       clk,
		tenantID:    tenantID,
		serviceID:   svc.ID(),
		staffID:     foreign.ID(),
	}
}

func TestBookingCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("本人のキャンセルOK", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		customerID := uuid.New()
		entity := f.seedBooking(t, customerID)

		err := f.commands.Cancel(ctx, commands.CancelRequest{
			BookingID:   entity.ID(),
			Actor:       booking.CancelledByCustomer,
			RequesterID: customerID,
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, entity.Status())
		require.Len(t, f.bookingRepo.cancelled, 1)
		assert.Equal(t, []string{"Booking cancelled"}, f.mailer.sent)
	})

	t.Run("テナント側のキャンセルOK", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		entity := f.seedBooking(t, uuid.New())

		err := f.commands.Cancel(ctx, commands.CancelRequest{
			BookingID:         entity.ID(),
			Actor:             booking.CancelledByTenant,
			RequesterTenantID: f.tenantID,
		})
		require.NoError(t, err)
		require.NotNil(t, entity.CancelledBy())
		assert.Equal(t, booking.CancelledByTenant, *entity.CancelledBy())
	})

	t.Run("他人の予約はNG", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		entity := f.seedBooking(t, uuid.New())

		err := f.commands.Cancel(ctx, commands.CancelRequest{
			BookingID:   entity.ID(),
			Actor:       booking.CancelledByCustomer,
			RequesterID: uuid.New(),
		})
		assert.ErrorIs(t, err, commands.ErrNotBookingParticipant)
		assert.Equal(t, booking.StatusConfirmed, entity.Status())
	})

	t.Run("他テナントの予約はNG", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		entity := f.seedBooking(t, uuid.New())

		err := f.commands.Cancel(ctx, commands.CancelRequest{
			BookingID:         entity.ID(),
			Actor:             booking.CancelledByTenant,
			RequesterTenantID: uuid.New(),
		})
		assert.ErrorIs(t, err, commands.ErrNotBookingParticipant)
	})

	t.Run("存在しない予約はNG", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})

		err := f.commands.Cancel(ctx, commands.CancelRequest{
			BookingID:   uuid.New(),
			Actor:       booking.CancelledByCustomer,
			RequesterID: uuid.New(),
		})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("24時間を切るとポリシー違反", func(t *testing.T) {
		f := newBookingFixture(t, nil, &fakeIntents{})
		customerID := uuid.New()
		entity := f.seedBooking(t, customerID)
		f.clock.Add(40 * time.Hour)

		err := f.commands.Cancel(ctx, commands.CancelRequest{
			BookingID:   entity.ID(),
			Actor:       booking.CancelledByCustomer,
			RequesterID: customerID,
		})
		assert.ErrorIs(t, err, commands.ErrCancellationPolicy)
		assert.Empty(t, f.bookingRepo.cancelled)
		assert.Empty(t, f.mailer.sent)
	})
}
