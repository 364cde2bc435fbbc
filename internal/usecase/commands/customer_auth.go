package commands

import (
	"context"

	"barberbook/internal/domain/customer"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/pkg/jwt"
	"barberbook/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("customer email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrCustomerInactive     = errs.New("customer inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	// FindByEmail matches case-insensitively; emails are stored lowercased.
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)
}

type CustomerLoginResult struct {
	CustomerID uuid.UUID
	Token      string
}

// CustomerAuth is the customer session boundary. Note the accepted
// limitation: logout only clears the client cookie, issued tokens stay valid
// until natural expiry because no server-side revocation list exists.
type CustomerAuth interface {
	Register(ctx context.Context, req reqdto.CustomerRegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.CustomerLoginRequest) (*CustomerLoginResult, error)
}

type customerAuthImpl struct {
	repo       CustomerRepository
	jwtService jwt.CustomerService
}

func NewCustomerAuth(repo CustomerRepository, jwtService jwt.CustomerService) CustomerAuth {
	return &customerAuthImpl{
		repo:       repo,
		jwtService: jwtService,
	}
}

func (a *customerAuthImpl) Register(ctx context.Context, req reqdto.CustomerRegisterRequest) (uuid.UUID, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := customer.NewCustomer(credentials.Email(), hash)
	if err := a.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Wrap(err, "failed to create customer")
	}

	return entity.ID(), nil
}

func (a *customerAuthImpl) Login(ctx context.Context, req reqdto.CustomerLoginRequest) (*CustomerLoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	entity, err := a.repo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !entity.IsActive() {
		return nil, ErrCustomerInactive
	}

	if err := password.ComparePassword(entity.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Email().Value(), "")
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &CustomerLoginResult{
		CustomerID: entity.ID(),
		Token:      token,
	}, nil
}
