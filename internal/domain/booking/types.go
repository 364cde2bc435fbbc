package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal: cancelled and completed never transition back.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CancelActor records who cancelled a booking.
type CancelActor string

const (
	CancelledByCustomer CancelActor = "customer"
	CancelledByTenant   CancelActor = "tenant"
)

func (a CancelActor) IsValid() bool {
	return a == CancelledByCustomer || a == CancelledByTenant
}
