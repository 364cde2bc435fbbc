package readstore

import (
	"context"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewColumns = `
	id, tenant_id, customer_id, service_id, staff_id,
	customer_email, service_name, staff_name,
	appointment_at, display_date, display_time,
	status, deposit_cents, created_at, cancelled_at, cancelled_by`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, `SELECT`+bookingViewColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking", err)
	}
	defer rows.Close()

	view, err := pgx.CollectOneRow(rows, scanBookingView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT`+bookingViewColumns+`
		FROM bookings
		WHERE customer_id = $1
		ORDER BY appointment_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, scanBookingView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan customer bookings", err)
	}
	return views, nil
}

func (s *BookingReadStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT`+bookingViewColumns+`
		FROM bookings
		WHERE tenant_id = $1
		ORDER BY appointment_at DESC`,
		tenantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tenant bookings", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, scanBookingView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tenant bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.CollectableRow) (*queries.BookingView, error) {
	var (
		v             queries.BookingView
		appointmentAt pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		cancelledAt   pgtype.Timestamptz
		cancelledBy   pgtype.Text
	)
	err := row.Scan(
		&v.ID, &v.TenantID, &v.CustomerID, &v.ServiceID, &v.StaffID,
		&v.CustomerEmail, &v.ServiceName, &v.StaffName,
		&appointmentAt, &v.DisplayDate, &v.DisplayTime,
		&v.Status, &v.DepositCents, &createdAt, &cancelledAt, &cancelledBy,
	)
	if err != nil {
		return nil, err
	}
	v.AppointmentAt = pgconv.TimeFromPgtype(appointmentAt)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	v.CancelledBy = pgconv.StringPtrFromPgtype(cancelledBy)
	return &v, nil
}
