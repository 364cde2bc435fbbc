package payment

import (
	"context"
	"fmt"

	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Metadata is attached to every intent so webhook and dashboard views can be
// traced back to the booking without a DB lookup.
type Metadata struct {
	BookingID  uuid.UUID
	TenantID   uuid.UUID
	CustomerID uuid.UUID
}

type StripeIntents struct {
	currency string
}

func NewStripeIntents(cfg *config.Config) *StripeIntents {
	// stripe-go uses a process-global API key
	stripe.Key = cfg.Stripe.SecretKey
	return &StripeIntents{currency: cfg.Stripe.Currency}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, amountCents int64, meta Metadata) (string, error) {
	// stripe-go does not take ctx on call sites; honor cancellation before the
	// network round trip at least.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(s.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.IdempotencyKey = stripe.String("deposit:" + meta.BookingID.String())
	params.AddMetadata("booking_id", meta.BookingID.String())
	params.AddMetadata("tenant_id", meta.TenantID.String())
	params.AddMetadata("customer_id", meta.CustomerID.String())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", errs.Wrap(err, fmt.Sprintf("failed to create payment intent for booking %s", meta.BookingID))
	}
	return intent.ID, nil
}

// NopIntents is used when no Stripe key is configured (local development).
// Bookings still record the deposit amount, with a placeholder reference.
type NopIntents struct{}

func NewNopIntents() *NopIntents {
	return &NopIntents{}
}

func (n *NopIntents) CreateIntent(_ context.Context, _ int64, meta Metadata) (string, error) {
	return "nop_" + meta.BookingID.String(), nil
}
