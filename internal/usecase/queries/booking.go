package queries

import (
	"context"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByCustomer returns the customer's bookings ordered by appointment
	// timestamp descending.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*BookingView, error)
}

// BookingHistory splits a booking list into the projections the UI shows.
type BookingHistory struct {
	Upcoming []*BookingView `json:"upcoming"`
	Past     []*BookingView `json:"past"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	CustomerBookings(ctx context.Context, customerID uuid.UUID) (*BookingHistory, error)
	TenantBookings(ctx context.Context, tenantID uuid.UUID) (*BookingHistory, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) CustomerBookings(ctx context.Context, customerID uuid.UUID) (*BookingHistory, error) {
	views, err := q.readStore.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list customer bookings")
	}
	return splitHistory(views, q.clock.Now()), nil
}

func (q *bookingQueriesImpl) TenantBookings(ctx context.Context, tenantID uuid.UUID) (*BookingHistory, error) {
	views, err := q.readStore.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list tenant bookings")
	}
	return splitHistory(views, q.clock.Now()), nil
}

// upcoming = future appointment and not cancelled; everything else is past.
func splitHistory(views []*BookingView, now time.Time) *BookingHistory {
	history := &BookingHistory{
		Upcoming: []*BookingView{},
		Past:     []*BookingView{},
	}
	for _, v := range views {
		if v.AppointmentAt.After(now) && v.Status != booking.StatusCancelled.String() {
			history.Upcoming = append(history.Upcoming, v)
		} else {
			history.Past = append(history.Past, v)
		}
	}
	return history
}
