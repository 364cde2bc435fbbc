package schedule

import "time"

// DefaultCalendarDays is the rolling window shown on the booking page.
const DefaultCalendarDays = 30

// CalendarDay is a derived view of one date for one tenant. It is recomputed
// on every read and never persisted. Capacity is a 0-100 heuristic assigned
// purely from the day of week; it does not look at existing bookings.
type CalendarDay struct {
	Date     time.Time
	Capacity int
	Closed   bool
	Status   string
	Color    string
}

// Status buckets derived from capacity.
const (
	StatusClosed    = "Closed"
	StatusFull      = "Fully Booked"
	StatusLimited   = "Limited Availability"
	StatusModerate  = "Moderate Availability"
	StatusGood      = "Good Availability"
	StatusExcellent = "Excellent Availability"
)

// Calendar computes the day-level capacity calendar for [start, start+days).
// Deterministic: same inputs, same output, safe for concurrent use.
func Calendar(start time.Time, days int) []CalendarDay {
	if days <= 0 {
		days = DefaultCalendarDays
	}

	calendar := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		capacity := capacityForWeekday(date.Weekday())
		status, color := statusForCapacity(capacity)
		calendar = append(calendar, CalendarDay{
			Date:     date,
			Capacity: capacity,
			Closed:   capacity == 0,
			Status:   status,
			Color:    color,
		})
	}
	return calendar
}

// DayFor computes the CalendarDay for a single date.
func DayFor(date time.Time) CalendarDay {
	return Calendar(date, 1)[0]
}

func capacityForWeekday(weekday time.Weekday) int {
	switch weekday {
	case time.Sunday:
		return 0
	case time.Saturday:
		return 50
	case time.Friday:
		return 70
	default:
		return 85
	}
}

func statusForCapacity(capacity int) (status, color string) {
	switch {
	case capacity == 0:
		return StatusClosed, "#9ca3af"
	case capacity < 20:
		return StatusFull, "#ef4444"
	case capacity < 40:
		return StatusLimited, "#f97316"
	case capacity < 60:
		return StatusModerate, "#eab308"
	case capacity < 80:
		return StatusGood, "#84cc16"
	default:
		return StatusExcellent, "#22c55e"
	}
}
