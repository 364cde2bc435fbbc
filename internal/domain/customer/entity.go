package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a booking-page visitor identity, distinct from tenant owners.
// Accounts are never merged across tenants.
type Customer struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	isActive     bool
	createdAt    time.Time
}

func NewCustomer(email Email, passwordHash string) *Customer {
	return &Customer{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		isActive:     true,
	}
}

func ReconstructCustomer(id uuid.UUID, email Email, passwordHash string, isActive bool, createdAt time.Time) *Customer {
	return &Customer{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) IsActive() bool       { return c.isActive }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
