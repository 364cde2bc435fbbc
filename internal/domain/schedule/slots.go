package schedule

import (
	"fmt"
	"math"
	"time"

	"barberbook/internal/domain/staff"
)

// TimeSlot is one bookable hour for one staff member on one date. Derived on
// every read, never persisted. Granularity is on-the-hour only.
type TimeSlot struct {
	Hour      int
	Display   string
	Available bool
}

// Slots computes the bookable slots for a date and a staff availability
// policy. The slot count is tied to the date's capacity heuristic: the same
// capacity that colors the calendar limits how many hours are offered, while
// the specific hours depend on the staff member's window and busy set.
//
// Sundays and closed days yield no slots.
func Slots(date time.Time, hours staff.WorkingHours) []TimeSlot {
	day := DayFor(date)
	if date.Weekday() == time.Sunday || day.Closed {
		return []TimeSlot{}
	}

	quota := int(math.Round(float64(day.Capacity) / 100 * float64(hours.TotalSlots())))

	slots := make([]TimeSlot, 0, quota)
	for hour := hours.StartHour; hour < hours.EndHour && len(slots) < quota; hour++ {
		if hours.IsBusy(hour) {
			continue
		}
		slots = append(slots, TimeSlot{
			Hour:      hour,
			Display:   formatHour(hour),
			Available: true,
		})
	}
	return slots
}

func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}
