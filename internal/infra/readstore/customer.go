package readstore

import (
	"context"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, email, is_active, created_at
		FROM customers
		WHERE id = $1`,
		id,
	)

	var (
		v         queries.CustomerView
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&v.ID, &v.Email, &v.IsActive, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan customer", err)
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &v, nil
}

type OwnerReadStore struct {
	pool *pgxpool.Pool
}

func NewOwnerReadStore(pool *pgxpool.Pool) *OwnerReadStore {
	return &OwnerReadStore{pool: pool}
}

func (s *OwnerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OwnerView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT o.id, o.tenant_id, o.email, t.slug, o.is_active
		FROM owners o
		JOIN tenants t ON t.id = o.tenant_id
		WHERE o.id = $1`,
		id,
	)

	var v queries.OwnerView
	if err := row.Scan(&v.ID, &v.TenantID, &v.Email, &v.Slug, &v.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan owner", err)
	}
	return &v, nil
}
