//go:build unit

package deposit_test

import (
	"testing"

	"barberbook/internal/domain/deposit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() deposit.Settings {
	return deposit.Settings{
		Enabled:      true,
		Type:         deposit.TypePercentage,
		Amount:       25,
		RefundPolicy: deposit.Refund24h,
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := deposit.DefaultSettings()
	assert.False(t, settings.Enabled)
	assert.Equal(t, deposit.TypePercentage, settings.Type)
	assert.Equal(t, float64(25), settings.Amount)
	assert.Equal(t, deposit.Refund24h, settings.RefundPolicy)
	require.NoError(t, settings.Validate())
}

func TestSettingsValidate(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*deposit.Settings)
		errIs  error
	}

	cases := []testCase{
		{
			name:   "基本成功ケース",
			mutate: func(s *deposit.Settings) {},
		},
		{
			name:   "固定額もOK",
			mutate: func(s *deposit.Settings) { s.Type = deposit.TypeFixed; s.Amount = 1500 },
		},
		{
			name:   "無効時は金額0でもOK",
			mutate: func(s *deposit.Settings) { s.Enabled = false; s.Amount = 0 },
		},
		{
			name:   "不明なタイプはNG",
			mutate: func(s *deposit.Settings) { s.Type = "subscription" },
			errIs:  deposit.ErrInvalidType,
		},
		{
			name:   "不明な返金ポリシーはNG",
			mutate: func(s *deposit.Settings) { s.RefundPolicy = "sometimes" },
			errIs:  deposit.ErrInvalidRefundPolicy,
		},
		{
			name:   "有効かつ金額0はNG",
			mutate: func(s *deposit.Settings) { s.Amount = 0 },
			errIs:  deposit.ErrNonPositiveAmount,
		},
		{
			name:   "有効かつ金額負はNG",
			mutate: func(s *deposit.Settings) { s.Amount = -10 },
			errIs:  deposit.ErrNonPositiveAmount,
		},
		{
			name:   "パーセント100超はNG",
			mutate: func(s *deposit.Settings) { s.Amount = 150 },
			errIs:  deposit.ErrPercentageTooLarge,
		},
		{
			name:   "無効でもパーセント100超はNG",
			mutate: func(s *deposit.Settings) { s.Enabled = false; s.Amount = 101 },
			errIs:  deposit.ErrPercentageTooLarge,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := validSettings()
			tc.mutate(&settings)
			err := settings.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDepositCents(t *testing.T) {
	cases := []struct {
		name       string
		settings   deposit.Settings
		priceCents int64
		want       int64
	}{
		{
			name:       "無効なら常に0",
			settings:   deposit.DefaultSettings(),
			priceCents: 10000,
			want:       0,
		},
		{
			name:       "パーセント計算",
			settings:   deposit.Settings{Enabled: true, Type: deposit.TypePercentage, Amount: 25, RefundPolicy: deposit.Refund24h},
			priceCents: 10000,
			want:       2500,
		},
		{
			name:       "パーセントは四捨五入",
			settings:   deposit.Settings{Enabled: true, Type: deposit.TypePercentage, Amount: 33, RefundPolicy: deposit.Refund24h},
			priceCents: 9999,
			want:       3300, // 3299.67 -> 3300
		},
		{
			name:       "固定額は価格に依存しない",
			settings:   deposit.Settings{Enabled: true, Type: deposit.TypeFixed, Amount: 1500, RefundPolicy: deposit.RefundNoRefund},
			priceCents: 10000,
			want:       1500,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.settings.DepositCents(tc.priceCents))
		})
	}
}

func TestRefundMessage(t *testing.T) {
	t.Run("カスタムメッセージ優先", func(t *testing.T) {
		settings := validSettings()
		settings.Message = "All deposits are final."
		assert.Equal(t, "All deposits are final.", settings.RefundMessage())
	})

	t.Run("ポリシーごとのデフォルト文言", func(t *testing.T) {
		settings := validSettings()

		settings.RefundPolicy = deposit.Refund48h
		assert.Contains(t, settings.RefundMessage(), "48 hours")

		settings.RefundPolicy = deposit.RefundNoRefund
		assert.Equal(t, "Deposits are non-refundable.", settings.RefundMessage())
	})
}
