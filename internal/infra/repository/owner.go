package repository

import (
	"context"
	"strings"

	"barberbook/internal/domain/tenant"
	"barberbook/internal/infra"
	"barberbook/internal/infra/db"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OwnerRepository struct {
	pool *pgxpool.Pool
}

func NewOwnerRepository(pool *pgxpool.Pool) *OwnerRepository {
	return &OwnerRepository{pool: pool}
}

func (r *OwnerRepository) Create(ctx context.Context, qx db.DBTX, o *tenant.Owner) error {
	_, err := qx.Exec(ctx, `
		INSERT INTO owners (id, tenant_id, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		o.ID(), o.TenantID(), o.Email(), o.PasswordHash(), o.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert owner", err)
	}
	return nil
}

func (r *OwnerRepository) FindByEmail(ctx context.Context, email string) (*tenant.Owner, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, email, password_hash, is_active, created_at
		FROM owners
		WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	)

	var (
		id           uuid.UUID
		tenantID     uuid.UUID
		storedEmail  string
		passwordHash string
		isActive     bool
		createdAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &tenantID, &storedEmail, &passwordHash, &isActive, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan owner", err)
	}

	return tenant.ReconstructOwner(id, tenantID, storedEmail, passwordHash, isActive, pgconv.TimeFromPgtype(createdAt)), nil
}
