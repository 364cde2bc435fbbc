package response

import (
	"github.com/google/uuid"
)

type CustomerRegisterResponse struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

type CustomerLoginResponse struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

type OwnerSignupResponse struct {
	TenantID uuid.UUID `json:"tenant_id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Slug     string    `json:"slug"`
	// Booking page address derived from the slug.
	BookingURL string `json:"booking_url"`
}

type OwnerLoginResponse struct {
	AccessToken string    `json:"access_token"`
	OwnerID     uuid.UUID `json:"owner_id"`
	TenantID    uuid.UUID `json:"tenant_id"`
}
