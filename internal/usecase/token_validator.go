package usecase

import (
	"barberbook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// CustomerIdentity is what middleware attaches to the request context after a
// customer token validates.
type CustomerIdentity struct {
	ID    uuid.UUID
	Email string
}

// OwnerIdentity carries the tenant scope alongside the owner record.
type OwnerIdentity struct {
	ID         uuid.UUID
	Email      string
	TenantSlug string
}

// CustomerTokenValidator provides token validation for middleware
type CustomerTokenValidator interface {
	ValidateToken(tokenString string) (*CustomerIdentity, error)
}

// OwnerTokenValidator provides token validation for owner-only routes
type OwnerTokenValidator interface {
	ValidateToken(tokenString string) (*OwnerIdentity, error)
}

type customerTokenValidatorImpl struct {
	jwtService jwt.CustomerService
}

func NewCustomerTokenValidator(jwtService jwt.CustomerService) CustomerTokenValidator {
	return &customerTokenValidatorImpl{jwtService: jwtService}
}

func (t *customerTokenValidatorImpl) ValidateToken(tokenString string) (*CustomerIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &CustomerIdentity{ID: claims.SubjectID, Email: claims.Email}, nil
}

type ownerTokenValidatorImpl struct {
	jwtService jwt.OwnerService
}

func NewOwnerTokenValidator(jwtService jwt.OwnerService) OwnerTokenValidator {
	return &ownerTokenValidatorImpl{jwtService: jwtService}
}

func (t *ownerTokenValidatorImpl) ValidateToken(tokenString string) (*OwnerIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &OwnerIdentity{ID: claims.SubjectID, Email: claims.Email, TenantSlug: claims.TenantSlug}, nil
}
