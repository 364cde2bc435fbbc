package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OwnerAuthHandler struct {
	ownerAuth      commands.OwnerAuth
	ownerQueries   queries.OwnerQueries
	platformDomain string
}

func NewOwnerAuthHandler(ownerAuth commands.OwnerAuth, ownerQueries queries.OwnerQueries, cfg config.Config) *OwnerAuthHandler {
	return &OwnerAuthHandler{
		ownerAuth:      ownerAuth,
		ownerQueries:   ownerQueries,
		platformDomain: cfg.Platform.Domain,
	}
}

// @Summary Tenant signup
// @Description Register a barbershop and its owner account in one step
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.OwnerSignupRequest true "Signup request"
// @Success 201 {object} resdto.OwnerSignupResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *OwnerAuthHandler) Signup(c *gin.Context) {
	var req reqdto.OwnerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.ownerAuth.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlugTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking page address is already taken"})
		case errors.Is(err, commands.ErrOwnerEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		case errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OwnerSignupResponse{
		TenantID:   result.TenantID,
		OwnerID:    result.OwnerID,
		Slug:       result.Slug,
		BookingURL: fmt.Sprintf("https://%s.%s", result.Slug, h.platformDomain),
	})
}

// @Summary Owner login
// @Description Login to the tenant dashboard
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.OwnerLoginRequest true "Login request"
// @Success 200 {object} resdto.OwnerLoginResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *OwnerAuthHandler) Login(c *gin.Context) {
	var req reqdto.OwnerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.ownerAuth.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, commands.ErrOwnerInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OwnerLoginResponse{
		AccessToken: result.Token,
		OwnerID:     result.OwnerID,
		TenantID:    result.TenantID,
	})
}

// @Summary Current owner
// @Description Resolve the token to the owner record and tenant scope
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.OwnerView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *OwnerAuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetOwner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	view, err := h.ownerQueries.CurrentOwner(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, queries.ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}
