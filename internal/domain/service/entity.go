package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrNegativePrice   = errors.New("service price cannot be negative")
)

// Service is a bookable offering of one tenant. Administrative edits never
// retroactively alter bookings that already reference it: bookings copy the
// name and price at creation time.
type Service struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	name        string
	durationMin int
	priceCents  int64
	category    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(tenantID uuid.UUID, name string, durationMin int, priceCents int64, category string) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:          uuid.New(),
		tenantID:    tenantID,
		name:        name,
		durationMin: durationMin,
		priceCents:  priceCents,
		category:    strings.TrimSpace(category),
	}, nil
}

func ReconstructService(id, tenantID uuid.UUID, name string, durationMin int, priceCents int64, category string, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:          id,
		tenantID:    tenantID,
		name:        name,
		durationMin: durationMin,
		priceCents:  priceCents,
		category:    category,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) Update(name string, durationMin int, priceCents int64, category string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if durationMin <= 0 {
		return ErrInvalidDuration
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	s.name = name
	s.durationMin = durationMin
	s.priceCents = priceCents
	s.category = strings.TrimSpace(category)
	return nil
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) TenantID() uuid.UUID  { return s.tenantID }
func (s *Service) Name() string         { return s.name }
func (s *Service) DurationMin() int     { return s.durationMin }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) Category() string     { return s.category }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
