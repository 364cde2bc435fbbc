package api

import (
	"errors"
	"net/http"

	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler covers the owner dashboard surface: tenant profile, staff,
// services and deposit settings. Every operation is scoped to the
// authenticated owner's tenant.
type AdminHandler struct {
	adminCommands   commands.TenantAdminCommands
	depositCommands commands.DepositCommands
	depositQueries  queries.DepositQueries
	ownerQueries    queries.OwnerQueries
}

func NewAdminHandler(
	adminCommands commands.TenantAdminCommands,
	depositCommands commands.DepositCommands,
	depositQueries queries.DepositQueries,
	ownerQueries queries.OwnerQueries,
) *AdminHandler {
	return &AdminHandler{
		adminCommands:   adminCommands,
		depositCommands: depositCommands,
		depositQueries:  depositQueries,
		ownerQueries:    ownerQueries,
	}
}

// @Summary Update tenant profile
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.UpdateTenantProfileRequest true "Profile"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /tenant/profile [put]
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	var req reqdto.UpdateTenantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.adminCommands.UpdateProfile(c.Request.Context(), ownerView.TenantID, req); err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create staff member
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.StaffRequest true "Staff member"
// @Success 201 {object} queries.StaffView
// @Failure 400 {object} map[string]string
// @Router /staff [post]
func (h *AdminHandler) CreateStaff(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	var req reqdto.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.adminCommands.CreateStaff(c.Request.Context(), ownerView.TenantID, req)
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update staff member
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Staff ID"
// @Param request body reqdto.StaffRequest true "Staff member"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /staff/{id} [put]
func (h *AdminHandler) UpdateStaff(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	var req reqdto.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.adminCommands.UpdateStaff(c.Request.Context(), ownerView.TenantID, staffID, req); err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove staff member
// @Description Soft-removes; past bookings keep their staff reference
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /staff/{id} [delete]
func (h *AdminHandler) RemoveStaff(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	if err := h.adminCommands.RemoveStaff(c.Request.Context(), ownerView.TenantID, staffID); err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} queries.ServiceView
// @Failure 400 {object} map[string]string
// @Router /services [post]
func (h *AdminHandler) CreateService(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.adminCommands.CreateService(c.Request.Context(), ownerView.TenantID, req)
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update service
// @Description Edits never touch bookings already made at the old price
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *AdminHandler) UpdateService(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.adminCommands.UpdateService(c.Request.Context(), ownerView.TenantID, serviceID, req); err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete service
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services/{id} [delete]
func (h *AdminHandler) DeleteService(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	if err := h.adminCommands.DeleteService(c.Request.Context(), ownerView.TenantID, serviceID); err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deposit settings
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.DepositSettingsView
// @Router /deposit-settings [get]
func (h *AdminHandler) GetDepositSettings(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	view, err := h.depositQueries.Settings(c.Request.Context(), ownerView.TenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update deposit settings
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateDepositSettingsRequest true "Settings"
// @Success 200 {object} queries.DepositSettingsView
// @Failure 400 {object} map[string]string
// @Router /deposit-settings [put]
func (h *AdminHandler) UpdateDepositSettings(c *gin.Context) {
	ownerView, ok := resolveOwner(c, h.ownerQueries)
	if !ok {
		return
	}

	var req reqdto.UpdateDepositSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	settings, err := h.depositCommands.UpdateSettings(c.Request.Context(), ownerView.TenantID, req)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidDepositSettings) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deposit settings"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, queries.DepositSettingsView{
		Enabled:      settings.Enabled,
		Type:         string(settings.Type),
		Amount:       settings.Amount,
		RefundPolicy: string(settings.RefundPolicy),
		Message:      settings.Message,
	})
}

func (h *AdminHandler) respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTenantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
	case errors.Is(err, commands.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
	case errors.Is(err, commands.ErrNotTenantOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": "Resource belongs to another tenant"})
	case errors.Is(err, commands.ErrServiceInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Service has bookings and cannot be deleted"})
	case errors.Is(err, commands.ErrInvalidSchedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid working hours"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
