package repository

import (
	"context"

	"barberbook/internal/domain/booking"
	"barberbook/internal/infra"
	"barberbook/internal/infra/db"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, qx db.DBTX, b *booking.Booking) error {
	_, err := qx.Exec(ctx, `
		INSERT INTO bookings (
			id, tenant_id, customer_id, service_id, staff_id,
			customer_email, service_name, staff_name,
			appointment_at, display_date, display_time,
			status, deposit_cents, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID(), b.TenantID(), b.CustomerID(), b.ServiceID(), b.StaffID(),
		b.CustomerEmail(), b.ServiceName(), b.StaffName(),
		b.AppointmentAt(), b.DisplayDate(), b.DisplayTime(),
		b.Status().String(), b.DepositCents(), b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, customer_id, service_id, staff_id,
			customer_email, service_name, staff_name,
			appointment_at, display_date, display_time,
			status, deposit_cents, created_at, cancelled_at, cancelled_by
		FROM bookings
		WHERE id = $1`,
		id,
	)

	var (
		bookingID     uuid.UUID
		tenantID      uuid.UUID
		customerID    uuid.UUID
		serviceID     uuid.UUID
		staffID       uuid.UUID
		customerEmail string
		serviceName   string
		staffName     string
		appointmentAt pgtype.Timestamptz
		displayDate   string
		displayTime   string
		status        string
		depositCents  int64
		createdAt     pgtype.Timestamptz
		cancelledAt   pgtype.Timestamptz
		cancelledBy   pgtype.Text
	)
	err := row.Scan(
		&bookingID, &tenantID, &customerID, &serviceID, &staffID,
		&customerEmail, &serviceName, &staffName,
		&appointmentAt, &displayDate, &displayTime,
		&status, &depositCents, &createdAt, &cancelledAt, &cancelledBy,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	var actor *booking.CancelActor
	if s := pgconv.StringPtrFromPgtype(cancelledBy); s != nil {
		a := booking.CancelActor(*s)
		actor = &a
	}

	return booking.ReconstructBooking(
		bookingID, tenantID, customerID, serviceID, staffID,
		customerEmail, serviceName, staffName,
		pgconv.TimeFromPgtype(appointmentAt),
		displayDate, displayTime,
		booking.Status(status),
		depositCents,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimePtrFromPgtype(cancelledAt),
		actor,
	), nil
}

func (r *BookingRepository) UpdateCancelled(ctx context.Context, b *booking.Booking) error {
	var cancelledBy *string
	if actor := b.CancelledBy(); actor != nil {
		s := string(*actor)
		cancelledBy = &s
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, cancelled_by = $4
		WHERE id = $1`,
		b.ID(), b.Status().String(), b.CancelledAt(), cancelledBy,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
