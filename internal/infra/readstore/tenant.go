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

type TenantReadStore struct {
	pool *pgxpool.Pool
}

func NewTenantReadStore(pool *pgxpool.Pool) *TenantReadStore {
	return &TenantReadStore{pool: pool}
}

func (s *TenantReadStore) FindBySlug(ctx context.Context, slug string) (*queries.TenantView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, slug, name, logo_url, is_active
		FROM tenants
		WHERE slug = $1`,
		slug,
	)

	var (
		view    queries.TenantView
		logoURL pgtype.Text
	)
	if err := row.Scan(&view.ID, &view.Slug, &view.Name, &logoURL, &view.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan tenant", err)
	}
	view.LogoURL = pgconv.StringPtrFromPgtype(logoURL)
	return &view, nil
}

func (s *TenantReadStore) ListServices(ctx context.Context, tenantID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, duration_min, price_cents, category
		FROM services
		WHERE tenant_id = $1
		ORDER BY category, name`,
		tenantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ServiceView, error) {
		var v queries.ServiceView
		err := row.Scan(&v.ID, &v.Name, &v.DurationMin, &v.PriceCents, &v.Category)
		return &v, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan services", err)
	}
	return views, nil
}

func (s *TenantReadStore) ListStaff(ctx context.Context, tenantID uuid.UUID) ([]*queries.StaffView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, tenant_id, name, start_hour, end_hour, busy_hours
		FROM staff_members
		WHERE tenant_id = $1 AND is_removed = false
		ORDER BY name`,
		tenantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, scanStaffView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan staff", err)
	}
	return views, nil
}

func scanStaffView(row pgx.CollectableRow) (*queries.StaffView, error) {
	var v queries.StaffView
	if err := row.Scan(&v.ID, &v.TenantID, &v.Name, &v.StartHour, &v.EndHour, &v.BusyHours); err != nil {
		return nil, err
	}
	if v.BusyHours == nil {
		v.BusyHours = []int{}
	}
	return &v, nil
}
