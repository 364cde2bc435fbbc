package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"barberbook/internal/pkg/cookie"
	"barberbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	customerValidator usecase.CustomerTokenValidator
	ownerValidator    usecase.OwnerTokenValidator
}

const (
	ctxCustomerKey = "customer_identity"
	ctxOwnerKey    = "owner_identity"
)

func NewAuthMiddleware(customerValidator usecase.CustomerTokenValidator, ownerValidator usecase.OwnerTokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		customerValidator: customerValidator,
		ownerValidator:    ownerValidator,
	}
}

// RequireCustomer accepts the customer cookie or a Bearer header.
func (m *AuthMiddleware) RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetCustomerToken(c)
		if token == "" {
			token = bearerToken(c)
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		identity, err := m.customerValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("customer token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxCustomerKey, identity)
		c.Next()
	}
}

// RequireOwner accepts the Bearer header only; owner dashboards are not
// cookie-based.
func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		identity, err := m.ownerValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("owner token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxOwnerKey, identity)
		c.Next()
	}
}

// RequireActor authenticates either party. Used on the shared cancel route
// where the acting side decides the cancellation audit record.
func (m *AuthMiddleware) RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := cookie.GetCustomerToken(c); token != "" {
			if identity, err := m.customerValidator.ValidateToken(token); err == nil {
				c.Set(ctxCustomerKey, identity)
				c.Next()
				return
			}
		}

		if token := bearerToken(c); token != "" {
			if identity, err := m.customerValidator.ValidateToken(token); err == nil {
				c.Set(ctxCustomerKey, identity)
				c.Next()
				return
			}
			if identity, err := m.ownerValidator.ValidateToken(token); err == nil {
				c.Set(ctxOwnerKey, identity)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetCustomer(c *gin.Context) (*usecase.CustomerIdentity, bool) {
	v, exists := c.Get(ctxCustomerKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*usecase.CustomerIdentity)
	return identity, ok
}

func GetOwner(c *gin.Context) (*usecase.OwnerIdentity, bool) {
	v, exists := c.Get(ctxOwnerKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*usecase.OwnerIdentity)
	return identity, ok
}
