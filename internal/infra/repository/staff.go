package repository

import (
	"context"

	"barberbook/internal/domain/staff"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepository struct {
	pool *pgxpool.Pool
}

func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

func (r *StaffRepository) Create(ctx context.Context, m *staff.Member) error {
	hours := m.WorkingHours()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff_members (id, tenant_id, name, start_hour, end_hour, busy_hours, is_removed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID(), m.TenantID(), m.Name(), hours.StartHour, hours.EndHour, hours.BusyHours, m.IsRemoved(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert staff member", err)
	}
	return nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Member, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, name, start_hour, end_hour, busy_hours, is_removed, created_at, updated_at
		FROM staff_members
		WHERE id = $1 AND is_removed = false`,
		id,
	)

	var (
		memberID  uuid.UUID
		tenantID  uuid.UUID
		name      string
		startHour int
		endHour   int
		busyHours []int
		isRemoved bool
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&memberID, &tenantID, &name, &startHour, &endHour, &busyHours, &isRemoved, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan staff member", err)
	}

	hours, err := staff.NewWorkingHours(startHour, endHour, busyHours)
	if err != nil {
		return nil, infra.WrapRepoErr("stored working hours are invalid", err)
	}

	return staff.ReconstructMember(
		memberID, tenantID, name, hours, isRemoved,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *StaffRepository) Update(ctx context.Context, m *staff.Member) error {
	hours := m.WorkingHours()
	tag, err := r.pool.Exec(ctx, `
		UPDATE staff_members
		SET name = $2, start_hour = $3, end_hour = $4, busy_hours = $5, is_removed = $6, updated_at = now()
		WHERE id = $1`,
		m.ID(), m.Name(), hours.StartHour, hours.EndHour, hours.BusyHours, m.IsRemoved(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update staff member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("staff member not found", nil, infra.KindNotFound)
	}
	return nil
}
