package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type TenantView struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	LogoURL  *string   `json:"logo_url,omitempty"`
	IsActive bool      `json:"is_active"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	Category    string    `json:"category"`
}

type StaffView struct {
	ID uuid.UUID `json:"id"`
	// TenantID scopes availability lookups; it is never serialized.
	TenantID  uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	StartHour int       `json:"start_hour"`
	EndHour   int       `json:"end_hour"`
	BusyHours []int     `json:"busy_hours"`
}

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	ServiceID     uuid.UUID  `json:"service_id"`
	StaffID       uuid.UUID  `json:"staff_id"`
	CustomerEmail string     `json:"customer_email"`
	ServiceName   string     `json:"service_name"`
	StaffName     string     `json:"staff_name"`
	AppointmentAt time.Time  `json:"appointment_at"`
	DisplayDate   string     `json:"appointment_date"`
	DisplayTime   string     `json:"appointment_time"`
	Status        string     `json:"status"`
	DepositCents  int64      `json:"deposit_cents"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy   *string    `json:"cancelled_by,omitempty"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type OwnerView struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Email    string    `json:"email"`
	Slug     string    `json:"tenant_slug"`
	IsActive bool      `json:"is_active"`
}

type DepositSettingsView struct {
	Enabled      bool    `json:"enabled"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	RefundPolicy string  `json:"refund_policy"`
	Message      string  `json:"message"`
}

type CalendarDayView struct {
	Date     string `json:"date"`
	Capacity int    `json:"capacity"`
	Closed   bool   `json:"closed"`
	Status   string `json:"status"`
	Color    string `json:"color"`
}

type SlotView struct {
	Hour      int    `json:"hour"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

type TenantPageView struct {
	Tenant   *TenantView    `json:"tenant"`
	Services []*ServiceView `json:"services"`
	Staff    []*StaffView   `json:"staff"`
}
