package repository

import (
	"context"

	"barberbook/internal/domain/service"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

func (r *ServiceRepository) Create(ctx context.Context, s *service.Service) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO services (id, tenant_id, name, duration_min, price_cents, category)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID(), s.TenantID(), s.Name(), s.DurationMin(), s.PriceCents(), s.Category(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert service", err)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, name, duration_min, price_cents, category, created_at, updated_at
		FROM services
		WHERE id = $1`,
		id,
	)

	var (
		serviceID   uuid.UUID
		tenantID    uuid.UUID
		name        string
		durationMin int
		priceCents  int64
		category    string
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(&serviceID, &tenantID, &name, &durationMin, &priceCents, &category, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan service", err)
	}

	return service.ReconstructService(
		serviceID, tenantID, name, durationMin, priceCents, category,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE services
		SET name = $2, duration_min = $3, price_cents = $4, category = $5, updated_at = now()
		WHERE id = $1`,
		s.ID(), s.Name(), s.DurationMin(), s.PriceCents(), s.Category(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		// FK violation from existing bookings surfaces as FOREIGN_KEY_VIOLATED
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
