package tenant

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("tenant name cannot be empty")

// Tenant is the aggregate root of a barbershop account. Services, staff and
// deposit settings all hang off it. Tenants are deactivated, never deleted.
type Tenant struct {
	id        uuid.UUID
	slug      Slug
	name      string
	logoURL   *string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTenant(slug Slug, name string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Tenant{
		id:       uuid.New(),
		slug:     slug,
		name:     name,
		isActive: true,
	}, nil
}

func ReconstructTenant(id uuid.UUID, slug Slug, name string, logoURL *string, isActive bool, createdAt, updatedAt time.Time) *Tenant {
	return &Tenant{
		id:        id,
		slug:      slug,
		name:      name,
		logoURL:   logoURL,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Tenant) UpdateProfile(name string, logoURL *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	t.name = name
	t.logoURL = logoURL
	return nil
}

func (t *Tenant) ID() uuid.UUID        { return t.id }
func (t *Tenant) Slug() Slug           { return t.slug }
func (t *Tenant) Name() string         { return t.name }
func (t *Tenant) LogoURL() *string     { return t.logoURL }
func (t *Tenant) IsActive() bool       { return t.isActive }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }
