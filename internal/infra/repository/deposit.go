package repository

import (
	"context"

	"barberbook/internal/domain/deposit"
	"barberbook/internal/infra"
	"barberbook/internal/infra/db"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DepositSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewDepositSettingsRepository(pool *pgxpool.Pool) *DepositSettingsRepository {
	return &DepositSettingsRepository{pool: pool}
}

// Upsert keeps one settings row per tenant.
func (r *DepositSettingsRepository) Upsert(ctx context.Context, tenantID uuid.UUID, s deposit.Settings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deposit_settings (tenant_id, enabled, deposit_type, amount, refund_policy, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id) DO UPDATE
		SET enabled = EXCLUDED.enabled,
			deposit_type = EXCLUDED.deposit_type,
			amount = EXCLUDED.amount,
			refund_policy = EXCLUDED.refund_policy,
			message = EXCLUDED.message,
			updated_at = now()`,
		tenantID, s.Enabled, string(s.Type), s.Amount, string(s.RefundPolicy), s.Message,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert deposit settings", err)
	}
	return nil
}

func (r *DepositSettingsRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (deposit.Settings, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT enabled, deposit_type, amount, refund_policy, message
		FROM deposit_settings
		WHERE tenant_id = $1`,
		tenantID,
	)

	var (
		enabled      bool
		depositType  string
		amount       float64
		refundPolicy string
		message      string
	)
	if err := row.Scan(&enabled, &depositType, &amount, &refundPolicy, &message); err != nil {
		if pgconv.IsNoRows(err) {
			return deposit.Settings{}, infra.WrapRepoErr("deposit settings not found", err, infra.KindNotFound)
		}
		return deposit.Settings{}, infra.WrapRepoErr("failed to scan deposit settings", err)
	}

	return deposit.Settings{
		Enabled:      enabled,
		Type:         deposit.Type(depositType),
		Amount:       amount,
		RefundPolicy: deposit.RefundPolicy(refundPolicy),
		Message:      message,
	}, nil
}

type DepositPaymentRepository struct {
	pool *pgxpool.Pool
}

func NewDepositPaymentRepository(pool *pgxpool.Pool) *DepositPaymentRepository {
	return &DepositPaymentRepository{pool: pool}
}

func (r *DepositPaymentRepository) Create(ctx context.Context, qx db.DBTX, p *deposit.Payment) error {
	_, err := qx.Exec(ctx, `
		INSERT INTO deposit_payments (id, booking_id, customer_id, tenant_id, amount_cents, intent_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.BookingID, p.CustomerID, p.TenantID, p.AmountCents, p.IntentID, string(p.Status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert deposit payment", err)
	}
	return nil
}
