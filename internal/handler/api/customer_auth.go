package api

import (
	"errors"
	"net/http"

	reqdto "barberbook/internal/handler/dto/request"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/handler/middleware"
	"barberbook/internal/pkg/config"
	"barberbook/internal/pkg/cookie"
	"barberbook/internal/pkg/jwt"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerAuthHandler struct {
	customerAuth    commands.CustomerAuth
	customerQueries queries.CustomerQueries
	jwtService      jwt.CustomerService
	cookieCfg       config.CookieConfig
}

func NewCustomerAuthHandler(
	customerAuth commands.CustomerAuth,
	customerQueries queries.CustomerQueries,
	jwtService jwt.CustomerService,
	cfg config.Config,
) *CustomerAuthHandler {
	return &CustomerAuthHandler{
		customerAuth:    customerAuth,
		customerQueries: customerQueries,
		jwtService:      jwtService,
		cookieCfg:       cfg.Cookie,
	}
}

// @Summary Customer registration
// @Description Register a new customer account
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRegisterRequest true "Registration request"
// @Success 201 {object} resdto.CustomerRegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/register [post]
func (h *CustomerAuthHandler) Register(c *gin.Context) {
	var req reqdto.CustomerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customerID, err := h.customerAuth.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		case errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CustomerRegisterResponse{CustomerID: customerID})
}

// @Summary Customer login
// @Description Login with email and password, sets the session cookie
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerLoginRequest true "Login request"
// @Success 200 {object} resdto.CustomerLoginResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /customers/login [post]
func (h *CustomerAuthHandler) Login(c *gin.Context) {
	var req reqdto.CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.customerAuth.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, commands.ErrCustomerInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	cookie.SetCustomerToken(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.CustomerLoginResponse{CustomerID: result.CustomerID})
}

// @Summary Customer logout
// @Description Clears the session cookie. Issued tokens remain valid until expiry.
// @Tags customers
// @Success 204 "No Content"
// @Router /customers/logout [post]
func (h *CustomerAuthHandler) Logout(c *gin.Context) {
	cookie.ClearCustomerToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current customer
// @Description Resolve the session token to the customer record
// @Tags customers
// @Produce json
// @Success 200 {object} queries.CustomerView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/me [get]
func (h *CustomerAuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetCustomer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	view, err := h.customerQueries.CurrentCustomer(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, queries.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}
