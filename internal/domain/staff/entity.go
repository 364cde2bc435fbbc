package staff

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("staff name cannot be empty")
	ErrInvalidWorkingHours = errors.New("invalid working hours")
)

// WorkingHours is the per-staff availability policy: a daily working window on
// whole-hour boundaries plus recurring busy hours inside it. Loaded from the
// persistence layer per staff member, not hardcoded.
type WorkingHours struct {
	StartHour int
	EndHour   int
	BusyHours []int
}

func NewWorkingHours(startHour, endHour int, busyHours []int) (WorkingHours, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return WorkingHours{}, ErrInvalidWorkingHours
	}
	for _, h := range busyHours {
		if h < startHour || h >= endHour {
			return WorkingHours{}, ErrInvalidWorkingHours
		}
	}
	return WorkingHours{StartHour: startHour, EndHour: endHour, BusyHours: busyHours}, nil
}

func (w WorkingHours) TotalSlots() int {
	return w.EndHour - w.StartHour
}

func (w WorkingHours) IsBusy(hour int) bool {
	for _, h := range w.BusyHours {
		if h == hour {
			return true
		}
	}
	return false
}

// Member belongs to exactly one tenant. Removal is a soft flag so past
// bookings keep their staff reference.
type Member struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	name         string
	workingHours WorkingHours
	isRemoved    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMember(tenantID uuid.UUID, name string, hours WorkingHours) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Member{
		id:           uuid.New(),
		tenantID:     tenantID,
		name:         name,
		workingHours: hours,
	}, nil
}

func ReconstructMember(id, tenantID uuid.UUID, name string, hours WorkingHours, isRemoved bool, createdAt, updatedAt time.Time) *Member {
	return &Member{
		id:           id,
		tenantID:     tenantID,
		name:         name,
		workingHours: hours,
		isRemoved:    isRemoved,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *Member) Update(name string, hours WorkingHours) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	m.name = name
	m.workingHours = hours
	return nil
}

func (m *Member) Remove() {
	m.isRemoved = true
}

func (m *Member) ID() uuid.UUID              { return m.id }
func (m *Member) TenantID() uuid.UUID        { return m.tenantID }
func (m *Member) Name() string               { return m.name }
func (m *Member) WorkingHours() WorkingHours { return m.workingHours }
func (m *Member) IsRemoved() bool            { return m.isRemoved }
func (m *Member) CreatedAt() time.Time       { return m.createdAt }
func (m *Member) UpdatedAt() time.Time       { return m.updatedAt }
