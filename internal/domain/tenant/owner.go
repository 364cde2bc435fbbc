package tenant

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidOwnerEmail = errors.New("invalid owner email format")

var ownerEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Owner is the business-owner identity attached to a tenant. It lives in a
// different identity space than customers and signs in through its own flow.
type Owner struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	email        string
	passwordHash string
	isActive     bool
	createdAt    time.Time
}

func NewOwner(tenantID uuid.UUID, email, passwordHash string) (*Owner, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !ownerEmailRegex.MatchString(email) {
		return nil, ErrInvalidOwnerEmail
	}
	return &Owner{
		id:           uuid.New(),
		tenantID:     tenantID,
		email:        email,
		passwordHash: passwordHash,
		isActive:     true,
	}, nil
}

func ReconstructOwner(id, tenantID uuid.UUID, email, passwordHash string, isActive bool, createdAt time.Time) *Owner {
	return &Owner{
		id:           id,
		tenantID:     tenantID,
		email:        email,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (o *Owner) ID() uuid.UUID        { return o.id }
func (o *Owner) TenantID() uuid.UUID  { return o.tenantID }
func (o *Owner) Email() string        { return o.email }
func (o *Owner) PasswordHash() string { return o.passwordHash }
func (o *Owner) IsActive() bool       { return o.isActive }
func (o *Owner) CreatedAt() time.Time { return o.createdAt }
