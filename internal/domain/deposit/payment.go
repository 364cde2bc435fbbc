package deposit

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSucceeded, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Payment records a deposit charge attempt against a booking. The intent ID
// points at the external payment processor; its lifecycle webhooks move
// Status forward.
type Payment struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	CustomerID   uuid.UUID
	TenantID     uuid.UUID
	AmountCents  int64
	IntentID     string
	Status       PaymentStatus
	RefundCents  *int64
	RefundReason *string
	CreatedAt    time.Time
}

func NewPayment(bookingID, customerID, tenantID uuid.UUID, amountCents int64, intentID string) *Payment {
	return &Payment{
		ID:          uuid.New(),
		BookingID:   bookingID,
		CustomerID:  customerID,
		TenantID:    tenantID,
		AmountCents: amountCents,
		IntentID:    intentID,
		Status:      PaymentPending,
	}
}
