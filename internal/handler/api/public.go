package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"barberbook/internal/domain/schedule"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHandler serves the unauthenticated booking-page API: tenant profile,
// capacity calendar and per-staff slots.
type PublicHandler struct {
	tenantQueries       queries.TenantQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewPublicHandler(tenantQueries queries.TenantQueries, availabilityQueries queries.AvailabilityQueries) *PublicHandler {
	return &PublicHandler{
		tenantQueries:       tenantQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Tenant booking page
// @Description Tenant profile with its service and staff catalogs
// @Tags public
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} queries.TenantPageView
// @Failure 404 {object} map[string]string
// @Router /public/{slug} [get]
func (h *PublicHandler) TenantPage(c *gin.Context) {
	page, err := h.tenantQueries.PublicPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Capacity calendar
// @Description 30-day capacity calendar starting today
// @Tags public
// @Produce json
// @Param slug path string true "Tenant slug"
// @Param days query int false "Number of days" default(30)
// @Success 200 {array} queries.CalendarDayView
// @Failure 404 {object} map[string]string
// @Router /public/{slug}/calendar [get]
func (h *PublicHandler) Calendar(c *gin.Context) {
	days := schedule.DefaultCalendarDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
			return
		}
		days = parsed
	}

	calendar, err := h.availabilityQueries.Calendar(c.Request.Context(), c.Param("slug"), days)
	if err != nil {
		if errors.Is(err, queries.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, calendar)
}

// @Summary Bookable slots
// @Description Hourly slots for one staff member on one date
// @Tags public
// @Produce json
// @Param slug path string true "Tenant slug"
// @Param staffId query string true "Staff member ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} queries.SlotView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /public/{slug}/slots [get]
func (h *PublicHandler) Slots(c *gin.Context) {
	staffID, err := uuid.Parse(c.Query("staffId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staffId parameter"})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date parameter"})
		return
	}

	slots, err := h.availabilityQueries.Slots(c.Request.Context(), c.Param("slug"), staffID, date)
	if err != nil {
		if errors.Is(err, queries.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, slots)
}
