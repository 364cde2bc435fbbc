package repository

import (
	"context"

	"barberbook/internal/domain/tenant"
	"barberbook/internal/infra"
	"barberbook/internal/infra/db"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository struct {
	pool *pgxpool.Pool
}

func NewTenantRepository(pool *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{pool: pool}
}

func (r *TenantRepository) Create(ctx context.Context, qx db.DBTX, t *tenant.Tenant) error {
	_, err := qx.Exec(ctx, `
		INSERT INTO tenants (id, slug, name, logo_url, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		t.ID(), t.Slug().Value(), t.Name(), t.LogoURL(), t.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert tenant", err)
	}
	return nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, slug, name, logo_url, is_active, created_at, updated_at
		FROM tenants
		WHERE id = $1`,
		id,
	)
	return scanTenant(row)
}

func (r *TenantRepository) UpdateProfile(ctx context.Context, t *tenant.Tenant) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tenants
		SET name = $2, logo_url = $3, is_active = $4, updated_at = now()
		WHERE id = $1`,
		t.ID(), t.Name(), t.LogoURL(), t.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update tenant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tenant not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*tenant.Tenant, error) {
	var (
		id        uuid.UUID
		slugStr   string
		name      string
		logoURL   pgtype.Text
		isActive  bool
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &slugStr, &name, &logoURL, &isActive, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan tenant", err)
	}

	slug, err := tenant.NewSlug(slugStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slug is invalid", err)
	}

	return tenant.ReconstructTenant(
		id, slug, name,
		pgconv.StringPtrFromPgtype(logoURL),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
