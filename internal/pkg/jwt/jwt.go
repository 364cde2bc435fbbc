package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Subject kinds. Tenant owners and customers are separate identity spaces;
// a token minted for one never validates as the other.
const (
	SubjectOwner    = "owner"
	SubjectCustomer = "customer"
)

type Claims struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	Email       string    `json:"email"`
	SubjectKind string    `json:"subject_kind"`
	TenantSlug  string    `json:"tenant_slug,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	subjectKind   string
}

// OwnerService signs 24-hour tenant-scoped owner sessions.
type OwnerService struct {
	*Service
}

// CustomerService signs 7-day customer sessions.
type CustomerService struct {
	*Service
}

func NewOwnerService(secretKey string, tokenDuration time.Duration) OwnerService {
	return OwnerService{newService(secretKey, tokenDuration, SubjectOwner)}
}

func NewCustomerService(secretKey string, tokenDuration time.Duration) CustomerService {
	return CustomerService{newService(secretKey, tokenDuration, SubjectCustomer)}
}

func newService(secretKey string, tokenDuration time.Duration, subjectKind string) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		subjectKind:   subjectKind,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(subjectID uuid.UUID, email, tenantSlug string) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID:   subjectID,
		Email:       email,
		SubjectKind: s.subjectKind,
		TenantSlug:  tenantSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.SubjectKind != s.subjectKind {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
