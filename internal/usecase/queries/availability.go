package queries

import (
	"context"
	"log/slog"
	"time"

	"barberbook/internal/domain/schedule"
	"barberbook/internal/domain/staff"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StaffView, error)
}

type AvailabilityQueries interface {
	Calendar(ctx context.Context, slug string, days int) ([]CalendarDayView, error)
	Slots(ctx context.Context, slug string, staffID uuid.UUID, date time.Time) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	tenants TenantReadStore
	staff   StaffReadStore
	clock   clock.Clock
}

func NewAvailabilityQueries(tenants TenantReadStore, staffStore StaffReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		tenants: tenants,
		staff:   staffStore,
		clock:   clk,
	}
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, slug string, days int) ([]CalendarDayView, error) {
	if _, err := q.resolveTenant(ctx, slug); err != nil {
		return nil, err
	}

	start := q.clock.Now()
	calendar := schedule.Calendar(start, days)

	views := make([]CalendarDayView, len(calendar))
	for i, day := range calendar {
		views[i] = CalendarDayView{
			Date:     day.Date.Format("2006-01-02"),
			Capacity: day.Capacity,
			Closed:   day.Closed,
			Status:   day.Status,
			Color:    day.Color,
		}
	}
	return views, nil
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, slug string, staffID uuid.UUID, date time.Time) ([]SlotView, error) {
	tenantView, err := q.resolveTenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	staffView, err := q.staff.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Unknown staff degrades to an empty list rather than an error.
			slog.Warn("slot query for unknown staff member", "staff_id", staffID)
			return []SlotView{}, nil
		}
		return nil, errs.Wrap(err, "failed to load staff member")
	}

	// Staff of another tenant must not leak through a foreign booking page;
	// same degrade as an unknown staff member
	if staffView.TenantID != tenantView.ID {
		slog.Warn("slot query for staff of another tenant", "staff_id", staffID, "tenant_id", tenantView.ID)
		return []SlotView{}, nil
	}

	hours, err := staff.NewWorkingHours(staffView.StartHour, staffView.EndHour, staffView.BusyHours)
	if err != nil {
		return nil, errs.Wrap(err, "stored working hours are invalid")
	}

	slots := schedule.Slots(date, hours)
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{Hour: s.Hour, Display: s.Display, Available: s.Available}
	}
	return views, nil
}

func (q *availabilityQueriesImpl) resolveTenant(ctx context.Context, slug string) (*TenantView, error) {
	tenantView, err := q.tenants.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve tenant")
	}
	if !tenantView.IsActive {
		return nil, ErrTenantNotFound
	}
	return tenantView, nil
}
