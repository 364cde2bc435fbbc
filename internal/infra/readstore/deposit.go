package readstore

import (
	"context"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DepositSettingsReadStore struct {
	pool *pgxpool.Pool
}

func NewDepositSettingsReadStore(pool *pgxpool.Pool) *DepositSettingsReadStore {
	return &DepositSettingsReadStore{pool: pool}
}

func (s *DepositSettingsReadStore) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*queries.DepositSettingsView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT enabled, deposit_type, amount, refund_policy, message
		FROM deposit_settings
		WHERE tenant_id = $1`,
		tenantID,
	)

	var v queries.DepositSettingsView
	if err := row.Scan(&v.Enabled, &v.Type, &v.Amount, &v.RefundPolicy, &v.Message); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deposit settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan deposit settings", err)
	}
	return &v, nil
}
