package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingReference    = errors.New("booking requires customer, service, staff and tenant references")
	ErrAppointmentInPast   = errors.New("appointment must be in the future")
	ErrCancelWindowClosed  = errors.New("bookings can only be cancelled at least 24 hours in advance")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrBookingCompleted    = errors.New("booking is already completed")
	ErrInvalidCancelActor  = errors.New("invalid cancel actor")
	ErrNotYetFinished      = errors.New("booking cannot be completed before the appointment")
	ErrNegativeDeposit     = errors.New("deposit cannot be negative")
	ErrMissingDisplayTimes = errors.New("booking requires display date and time")
)

// CancelWindow is the minimum lead time for cancellation, measured against
// the appointment timestamp.
const CancelWindow = 24 * time.Hour

// Booking references a customer, a service, a staff member and a tenant.
// Service name, staff name and price are copied at creation time so later
// catalog edits never rewrite history. Records are retained forever; cancel
// is a status flip, not a delete.
type Booking struct {
	id            uuid.UUID
	tenantID      uuid.UUID
	customerID    uuid.UUID
	serviceID     uuid.UUID
	staffID       uuid.UUID
	customerEmail string
	serviceName   string
	staffName     string
	appointmentAt time.Time
	displayDate   string
	displayTime   string
	status        Status
	depositCents  int64
	createdAt     time.Time
	cancelledAt   *time.Time
	cancelledBy   *CancelActor
}

type NewBookingInput struct {
	TenantID      uuid.UUID
	CustomerID    uuid.UUID
	ServiceID     uuid.UUID
	StaffID       uuid.UUID
	CustomerEmail string
	ServiceName   string
	StaffName     string
	AppointmentAt time.Time
	DisplayDate   string
	DisplayTime   string
	DepositCents  int64
}

func NewBooking(now time.Time, in NewBookingInput) (*Booking, error) {
	if in.TenantID == uuid.Nil || in.CustomerID == uuid.Nil || in.ServiceID == uuid.Nil || in.StaffID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if in.DisplayDate == "" || in.DisplayTime == "" {
		return nil, ErrMissingDisplayTimes
	}
	if !in.AppointmentAt.After(now) {
		return nil, ErrAppointmentInPast
	}
	if in.DepositCents < 0 {
		return nil, ErrNegativeDeposit
	}

	return &Booking{
		id:            uuid.New(),
		tenantID:      in.TenantID,
		customerID:    in.CustomerID,
		serviceID:     in.ServiceID,
		staffID:       in.StaffID,
		customerEmail: in.CustomerEmail,
		serviceName:   in.ServiceName,
		staffName:     in.StaffName,
		appointmentAt: in.AppointmentAt,
		displayDate:   in.DisplayDate,
		displayTime:   in.DisplayTime,
		status:        StatusConfirmed,
		depositCents:  in.DepositCents,
		createdAt:     now,
	}, nil
}

func ReconstructBooking(
	id, tenantID, customerID, serviceID, staffID uuid.UUID,
	customerEmail, serviceName, staffName string,
	appointmentAt time.Time,
	displayDate, displayTime string,
	status Status,
	depositCents int64,
	createdAt time.Time,
	cancelledAt *time.Time,
	cancelledBy *CancelActor,
) *Booking {
	return &Booking{
		id:            id,
		tenantID:      tenantID,
		customerID:    customerID,
		serviceID:     serviceID,
		staffID:       staffID,
		customerEmail: customerEmail,
		serviceName:   serviceName,
		staffName:     staffName,
		appointmentAt: appointmentAt,
		displayDate:   displayDate,
		displayTime:   displayTime,
		status:        status,
		depositCents:  depositCents,
		createdAt:     createdAt,
		cancelledAt:   cancelledAt,
		cancelledBy:   cancelledBy,
	}
}

// Cancel enforces the 24-hour window against the appointment timestamp and
// records who cancelled. Terminal states are rejected without mutation.
func (b *Booking) Cancel(now time.Time, by CancelActor) error {
	if !by.IsValid() {
		return ErrInvalidCancelActor
	}
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrBookingCompleted
	}
	if b.appointmentAt.Sub(now) < CancelWindow {
		return ErrCancelWindowClosed
	}

	b.status = StatusCancelled
	cancelledAt := now
	b.cancelledAt = &cancelledAt
	b.cancelledBy = &by
	return nil
}

// Complete marks a confirmed booking whose appointment has passed.
func (b *Booking) Complete(now time.Time) error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrBookingCompleted
	}
	if now.Before(b.appointmentAt) {
		return ErrNotYetFinished
	}
	b.status = StatusCompleted
	return nil
}

// IsUpcoming: appointment in the future and not cancelled.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.appointmentAt.After(now) && b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) TenantID() uuid.UUID      { return b.tenantID }
func (b *Booking) CustomerID() uuid.UUID    { return b.customerID }
func (b *Booking) ServiceID() uuid.UUID     { return b.serviceID }
func (b *Booking) StaffID() uuid.UUID       { return b.staffID }
func (b *Booking) CustomerEmail() string    { return b.customerEmail }
func (b *Booking) ServiceName() string      { return b.serviceName }
func (b *Booking) StaffName() string        { return b.staffName }
func (b *Booking) AppointmentAt() time.Time { return b.appointmentAt }
func (b *Booking) DisplayDate() string      { return b.displayDate }
func (b *Booking) DisplayTime() string      { return b.displayTime }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) DepositCents() int64      { return b.depositCents }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time  { return b.cancelledAt }
func (b *Booking) CancelledBy() *CancelActor {
	return b.cancelledBy
}
