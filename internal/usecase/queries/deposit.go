package queries

import (
	"context"

	"barberbook/internal/domain/deposit"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type DepositSettingsReadStore interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*DepositSettingsView, error)
}

type DepositQueries interface {
	// Settings returns the tenant's deposit policy, falling back to the
	// documented defaults (disabled, 25% percentage) when none exist yet.
	Settings(ctx context.Context, tenantID uuid.UUID) (*DepositSettingsView, error)
}

type depositQueriesImpl struct {
	readStore DepositSettingsReadStore
}

func NewDepositQueries(readStore DepositSettingsReadStore) DepositQueries {
	return &depositQueriesImpl{readStore: readStore}
}

func (q *depositQueriesImpl) Settings(ctx context.Context, tenantID uuid.UUID) (*DepositSettingsView, error) {
	view, err := q.readStore.FindByTenant(ctx, tenantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			defaults := deposit.DefaultSettings()
			return &DepositSettingsView{
				Enabled:      defaults.Enabled,
				Type:         string(defaults.Type),
				Amount:       defaults.Amount,
				RefundPolicy: string(defaults.RefundPolicy),
				Message:      defaults.Message,
			}, nil
		}
		return nil, errs.Wrap(err, "failed to load deposit settings")
	}
	return view, nil
}
