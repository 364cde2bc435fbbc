package deposit

import (
	"errors"
	"math"
)

var (
	ErrInvalidType         = errors.New("invalid deposit type")
	ErrInvalidRefundPolicy = errors.New("invalid refund policy")
	ErrNonPositiveAmount   = errors.New("deposit amount must be positive when enabled")
	ErrPercentageTooLarge  = errors.New("percentage deposit cannot exceed 100")
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

func (t Type) IsValid() bool {
	return t == TypePercentage || t == TypeFixed
}

// RefundPolicy is advisory text shown to the customer. Nothing computes or
// triggers refunds from it.
type RefundPolicy string

const (
	Refund24h      RefundPolicy = "24h"
	Refund48h      RefundPolicy = "48h"
	Refund72h      RefundPolicy = "72h"
	RefundNoRefund RefundPolicy = "no-refund"
)

func (p RefundPolicy) IsValid() bool {
	switch p {
	case Refund24h, Refund48h, Refund72h, RefundNoRefund:
		return true
	default:
		return false
	}
}

// Settings is the per-tenant deposit policy. Amount means percent of the
// service price for TypePercentage and an absolute amount in cents for
// TypeFixed.
type Settings struct {
	Enabled      bool
	Type         Type
	Amount       float64
	RefundPolicy RefundPolicy
	Message      string
}

// DefaultSettings returned when a tenant has not configured deposits yet.
func DefaultSettings() Settings {
	return Settings{
		Enabled:      false,
		Type:         TypePercentage,
		Amount:       25,
		RefundPolicy: Refund24h,
		Message:      "",
	}
}

// Validate applies the write-time invariants. Disabled settings only need a
// recognizable type and policy.
func (s Settings) Validate() error {
	if !s.Type.IsValid() {
		return ErrInvalidType
	}
	if !s.RefundPolicy.IsValid() {
		return ErrInvalidRefundPolicy
	}
	if s.Enabled && s.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if s.Type == TypePercentage && s.Amount > 100 {
		return ErrPercentageTooLarge
	}
	return nil
}

// DepositCents computes the required deposit for a service price. Disabled
// settings require no deposit.
func (s Settings) DepositCents(priceCents int64) int64 {
	if !s.Enabled {
		return 0
	}
	switch s.Type {
	case TypePercentage:
		return int64(math.Round(float64(priceCents) * s.Amount / 100))
	case TypeFixed:
		return int64(math.Round(s.Amount))
	default:
		return 0
	}
}

// RefundMessage is the customer-facing line rendered next to the deposit
// amount on the booking page.
func (s Settings) RefundMessage() string {
	if s.Message != "" {
		return s.Message
	}
	switch s.RefundPolicy {
	case Refund24h:
		return "Deposits are refundable up to 24 hours before your appointment."
	case Refund48h:
		return "Deposits are refundable up to 48 hours before your appointment."
	case Refund72h:
		return "Deposits are refundable up to 72 hours before your appointment."
	case RefundNoRefund:
		return "Deposits are non-refundable."
	default:
		return ""
	}
}
