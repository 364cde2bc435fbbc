package commands

import (
	"context"

	"barberbook/internal/domain/deposit"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDepositSettings = errs.New("invalid deposit settings")

type DepositSettingsRepository interface {
	Upsert(ctx context.Context, tenantID uuid.UUID, s deposit.Settings) error
}

type DepositCommands interface {
	UpdateSettings(ctx context.Context, tenantID uuid.UUID, req reqdto.UpdateDepositSettingsRequest) (deposit.Settings, error)
}

type depositCommandsImpl struct {
	repo DepositSettingsRepository
}

func NewDepositCommands(repo DepositSettingsRepository) DepositCommands {
	return &depositCommandsImpl{repo: repo}
}

func (d *depositCommandsImpl) UpdateSettings(ctx context.Context, tenantID uuid.UUID, req reqdto.UpdateDepositSettingsRequest) (deposit.Settings, error) {
	settings := req.ToDomain()
	if err := settings.Validate(); err != nil {
		return deposit.Settings{}, errs.Mark(err, ErrInvalidDepositSettings)
	}
	if err := d.repo.Upsert(ctx, tenantID, settings); err != nil {
		return deposit.Settings{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return settings, nil
}
