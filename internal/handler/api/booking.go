package api

import (
	"errors"
	"net/http"

	"barberbook/internal/domain/booking"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	ownerQueries    queries.OwnerQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	ownerQueries queries.OwnerQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		ownerQueries:    ownerQueries,
	}
}

// @Summary Create booking
// @Description Book an appointment slot; requires a customer session
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetCustomer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), req, identity.ID, identity.Email)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		case errors.Is(err, commands.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		case errors.Is(err, commands.ErrStaffTenantMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Staff member does not offer this service"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
		case errors.Is(err, commands.ErrPaymentFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Deposit payment could not be initiated"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Cancel booking
// @Description Cancel a booking at least 24 hours before the appointment
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/cancel [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	cancelReq, ok := h.cancelRequestFor(c, bookingID)
	if !ok {
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), cancelReq); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrNotBookingParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking belongs to another party"})
		case errors.Is(err, commands.ErrCancellationPolicy):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Bookings can only be cancelled at least 24 hours in advance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Customer booking history
// @Description Bookings of the current customer, split into upcoming and past
// @Tags bookings
// @Produce json
// @Success 200 {object} queries.BookingHistory
// @Failure 401 {object} map[string]string
// @Router /customers/me/bookings [get]
func (h *BookingHandler) CustomerBookings(c *gin.Context) {
	identity, ok := middleware.GetCustomer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	history, err := h.bookingQueries.CustomerBookings(c.Request.Context(), identity.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// @Summary Tenant booking list
// @Description Bookings of the owner's tenant, split into upcoming and past
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.BookingHistory
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) TenantBookings(c *gin.Context) {
	ownerView, ok := h.resolveOwner(c)
	if !ok {
		return
	}

	history, err := h.bookingQueries.TenantBookings(c.Request.Context(), ownerView.TenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// cancelRequestFor decides the acting party from whichever identity
// authenticated. Customers cancel their own bookings, owners their tenant's.
func (h *BookingHandler) cancelRequestFor(c *gin.Context, bookingID uuid.UUID) (commands.CancelRequest, bool) {
	if identity, ok := middleware.GetCustomer(c); ok {
		return commands.CancelRequest{
			BookingID:   bookingID,
			Actor:       booking.CancelledByCustomer,
			RequesterID: identity.ID,
		}, true
	}

	if _, ok := middleware.GetOwner(c); ok {
		ownerView, resolved := h.resolveOwner(c)
		if !resolved {
			return commands.CancelRequest{}, false
		}
		return commands.CancelRequest{
			BookingID:         bookingID,
			Actor:             booking.CancelledByTenant,
			RequesterTenantID: ownerView.TenantID,
		}, true
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	return commands.CancelRequest{}, false
}

func (h *BookingHandler) resolveOwner(c *gin.Context) (*queries.OwnerView, bool) {
	return resolveOwner(c, h.ownerQueries)
}

// resolveOwner maps the token identity back to the owner record so the tenant
// scope reflects the current DB state, not the claim minted at login.
func resolveOwner(c *gin.Context, ownerQueries queries.OwnerQueries) (*queries.OwnerView, bool) {
	identity, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	view, err := ownerQueries.CurrentOwner(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, queries.ErrOwnerNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}
	if !view.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		return nil, false
	}
	return view, true
}
