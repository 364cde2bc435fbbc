package request

import (
	"barberbook/internal/domain/deposit"
)

type UpdateTenantProfileRequest struct {
	Name    string  `json:"name" binding:"required"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// StaffRequest is shared by create and update; both carry the full schedule.
type StaffRequest struct {
	Name      string `json:"name" binding:"required"`
	StartHour int    `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int    `json:"end_hour" binding:"required,min=1,max=24"`
	BusyHours []int  `json:"busy_hours"`
}

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Category    string `json:"category"`
}

type UpdateDepositSettingsRequest struct {
	Enabled      bool    `json:"enabled"`
	Type         string  `json:"type" binding:"required,oneof=percentage fixed"`
	Amount       float64 `json:"amount"`
	RefundPolicy string  `json:"refund_policy" binding:"required,oneof=24h 48h 72h no-refund"`
	Message      string  `json:"message"`
}

func (r UpdateDepositSettingsRequest) ToDomain() deposit.Settings {
	return deposit.Settings{
		Enabled:      r.Enabled,
		Type:         deposit.Type(r.Type),
		Amount:       r.Amount,
		RefundPolicy: deposit.RefundPolicy(r.RefundPolicy),
		Message:      r.Message,
	}
}
