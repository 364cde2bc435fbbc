package commands

import (
	"context"

	"barberbook/internal/domain/tenant"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/infra/db"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/pkg/jwt"
	"barberbook/internal/pkg/password"
	"barberbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSlugTaken       = errs.New("tenant slug already taken")
	ErrOwnerEmailTaken = errs.New("owner email already registered")
	ErrOwnerInactive   = errs.New("owner inactive")
)

type TenantRepository interface {
	Create(ctx context.Context, qx db.DBTX, t *tenant.Tenant) error
	FindByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error)
	UpdateProfile(ctx context.Context, t *tenant.Tenant) error
}

type OwnerRepository interface {
	Create(ctx context.Context, qx db.DBTX, o *tenant.Owner) error
	FindByEmail(ctx context.Context, email string) (*tenant.Owner, error)
}

type OwnerLoginResult struct {
	OwnerID  uuid.UUID
	TenantID uuid.UUID
	Token    string
}

type SignupResult struct {
	TenantID uuid.UUID
	OwnerID  uuid.UUID
	Slug     string
}

// OwnerAuth is the single signup/login path for business owners. Earlier
// iterations grew parallel registration flows; everything funnels through
// here now with the storage backend injected.
type OwnerAuth interface {
	Signup(ctx context.Context, req reqdto.OwnerSignupRequest) (*SignupResult, error)
	Login(ctx context.Context, req reqdto.OwnerLoginRequest) (*OwnerLoginResult, error)
}

type ownerAuthImpl struct {
	tenantRepo TenantRepository
	ownerRepo  OwnerRepository
	jwtService jwt.OwnerService
	pool       *pgxpool.Pool
}

func NewOwnerAuth(tenantRepo TenantRepository, ownerRepo OwnerRepository, jwtService jwt.OwnerService, pool *pgxpool.Pool) OwnerAuth {
	return &ownerAuthImpl{
		tenantRepo: tenantRepo,
		ownerRepo:  ownerRepo,
		jwtService: jwtService,
		pool:       pool,
	}
}

func (a *ownerAuthImpl) Signup(ctx context.Context, req reqdto.OwnerSignupRequest) (*SignupResult, error) {
	slug, err := tenant.NewSlug(req.Slug)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tenantEntity, err := tenant.NewTenant(slug, req.BusinessName)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	ownerEntity, err := tenant.NewOwner(tenantEntity.ID(), req.Email, hash)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	// Tenant and owner are created atomically; a half-registered business
	// would be unreachable from either login flow.
	_, err = shared.RunInTx(ctx, a.pool, func(tx db.DBTX) (struct{}, error) {
		if err := a.tenantRepo.Create(ctx, tx, tenantEntity); err != nil {
			return struct{}{}, err
		}
		if err := a.ownerRepo.Create(ctx, tx, ownerEntity); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			if _, findErr := a.ownerRepo.FindByEmail(ctx, ownerEntity.Email()); findErr == nil {
				return nil, ErrOwnerEmailTaken
			}
			return nil, ErrSlugTaken
		}
		return nil, errs.Wrap(err, "failed to sign up tenant")
	}

	return &SignupResult{
		TenantID: tenantEntity.ID(),
		OwnerID:  ownerEntity.ID(),
		Slug:     slug.Value(),
	}, nil
}

func (a *ownerAuthImpl) Login(ctx context.Context, req reqdto.OwnerLoginRequest) (*OwnerLoginResult, error) {
	ownerEntity, err := a.ownerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !ownerEntity.IsActive() {
		return nil, ErrOwnerInactive
	}

	if err := password.ComparePassword(ownerEntity.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	tenantEntity, err := a.tenantRepo.FindByID(ctx, ownerEntity.TenantID())
	if err != nil || !tenantEntity.IsActive() {
		return nil, ErrOwnerInactive
	}

	token, err := a.jwtService.GenerateToken(ownerEntity.ID(), ownerEntity.Email(), tenantEntity.Slug().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &OwnerLoginResult{
		OwnerID:  ownerEntity.ID(),
		TenantID: tenantEntity.ID(),
		Token:    token,
	}, nil
}
