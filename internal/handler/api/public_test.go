//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barberbook/internal/handler/api"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubTenantQueries struct {
	page *queries.TenantPageView
	err  error
}

func (s *stubTenantQueries) PublicPage(_ context.Context, _ string) (*queries.TenantPageView, error) {
	return s.page, s.err
}

type stubAvailabilityQueries struct {
	calendar     []queries.CalendarDayView
	slots        []queries.SlotView
	err          error
	calendarDays int
	slotsStaffID uuid.UUID
	slotsDate    time.Time
}

func (s *stubAvailabilityQueries) Calendar(_ context.Context, _ string, days int) ([]queries.CalendarDayView, error) {
	s.calendarDays = days
	return s.calendar, s.err
}

func (s *stubAvailabilityQueries) Slots(_ context.Context, _ string, staffID uuid.UUID, date time.Time) ([]queries.SlotView, error) {
	s.slotsStaffID = staffID
	s.slotsDate = date
	return s.slots, s.err
}

type PublicHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	tenants      *stubTenantQueries
	availability *stubAvailabilityQueries
}

func (s *PublicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.tenants = &stubTenantQueries{}
	s.availability = &stubAvailabilityQueries{}
	handler := api.NewPublicHandler(s.tenants, s.availability)

	s.router.GET("/public/:slug", handler.TenantPage)
	s.router.GET("/public/:slug/calendar", handler.Calendar)
	s.router.GET("/public/:slug/slots", handler.Slots)
}

func TestPublicHandlerSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}

func (s *PublicHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PublicHandlerTestSuite) TestTenantPage() {
	s.Run("success: returns the booking page", func() {
		s.tenants.page = &queries.TenantPageView{
			Tenant:   &queries.TenantView{ID: uuid.New(), Slug: "fadehouse", Name: "Fade House", IsActive: true},
			Services: []*queries.ServiceView{{ID: uuid.New(), Name: "Haircut", DurationMin: 45, PriceCents: 10000, Category: "Cuts"}},
			Staff:    []*queries.StaffView{{ID: uuid.New(), Name: "Alex", StartHour: 9, EndHour: 17, BusyHours: []int{}}},
		}
		s.tenants.err = nil

		rec := s.get("/public/fadehouse")
		s.Equal(http.StatusOK, rec.Code)

		var page queries.TenantPageView
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
		s.Equal("fadehouse", page.Tenant.Slug)
		s.Len(page.Services, 1)
		s.Len(page.Staff, 1)
	})

	s.Run("error: 404 for unknown tenant", func() {
		s.tenants.page = nil
		s.tenants.err = queries.ErrTenantNotFound

		rec := s.get("/public/nosuch")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "Booking page not found")
	})

	s.Run("error: 500 on store failure", func() {
		s.tenants.page = nil
		s.tenants.err = errors.New("connection refused")

		rec := s.get("/public/fadehouse")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *PublicHandlerTestSuite) TestCalendar() {
	s.Run("success: defaults to 30 days", func() {
		s.availability.err = nil
		s.availability.calendar = []queries.CalendarDayView{
			{Date: "2026-09-01", Capacity: 85, Status: "Excellent Availability", Color: "#22c55e"},
		}

		rec := s.get("/public/fadehouse/calendar")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(30, s.availability.calendarDays)
	})

	s.Run("success: honors the days parameter", func() {
		s.availability.err = nil
		rec := s.get("/public/fadehouse/calendar?days=7")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(7, s.availability.calendarDays)
	})

	s.Run("error: 400 for out-of-range days", func() {
		for _, days := range []string{"0", "-1", "366", "abc"} {
			rec := s.get("/public/fadehouse/calendar?days=" + days)
			s.Equal(http.StatusBadRequest, rec.Code, "days=%s", days)
		}
	})

	s.Run("error: 404 for unknown tenant", func() {
		s.availability.err = queries.ErrTenantNotFound
		rec := s.get("/public/nosuch/calendar")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *PublicHandlerTestSuite) TestSlots() {
	staffID := uuid.New()

	s.Run("success: forwards staff and date", func() {
		s.availability.err = nil
		s.availability.slots = []queries.SlotView{{Hour: 9, Display: "9:00 AM", Available: true}}

		rec := s.get("/public/fadehouse/slots?staffId=" + staffID.String() + "&date=2026-09-03")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(staffID, s.availability.slotsStaffID)
		s.Equal(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), s.availability.slotsDate)

		var slots []queries.SlotView
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &slots))
		s.Len(slots, 1)
	})

	s.Run("error: 400 for malformed staffId", func() {
		rec := s.get("/public/fadehouse/slots?staffId=not-a-uuid&date=2026-09-03")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 for malformed date", func() {
		rec := s.get("/public/fadehouse/slots?staffId=" + staffID.String() + "&date=Sep+3")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 for unknown tenant", func() {
		s.availability.err = queries.ErrTenantNotFound
		rec := s.get("/public/nosuch/slots?staffId=" + staffID.String() + "&date=2026-09-03")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
