package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StaffID   uuid.UUID `json:"staff_id" binding:"required"`
	// Human-readable strings shown exactly as booked, frozen on the record.
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	// RFC 3339 timestamp of the appointment, the authoritative instant.
	AppointmentDateTime string `json:"appointment_date_time" binding:"required"`
}

func (r CreateBookingRequest) ParseAppointment() (time.Time, error) {
	return time.Parse(time.RFC3339, r.AppointmentDateTime)
}
