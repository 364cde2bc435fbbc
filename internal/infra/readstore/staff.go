package readstore

import (
	"context"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffReadStore struct {
	pool *pgxpool.Pool
}

func NewStaffReadStore(pool *pgxpool.Pool) *StaffReadStore {
	return &StaffReadStore{pool: pool}
}

func (s *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StaffView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, tenant_id, name, start_hour, end_hour, busy_hours
		FROM staff_members
		WHERE id = $1 AND is_removed = false`,
		id,
	)

	var v queries.StaffView
	if err := row.Scan(&v.ID, &v.TenantID, &v.Name, &v.StartHour, &v.EndHour, &v.BusyHours); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan staff member", err)
	}
	if v.BusyHours == nil {
		v.BusyHours = []int{}
	}
	return &v, nil
}
