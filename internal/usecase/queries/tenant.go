package queries

import (
	"context"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTenantNotFound = errs.New("tenant not found")

type TenantReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*TenantView, error)
	ListServices(ctx context.Context, tenantID uuid.UUID) ([]*ServiceView, error)
	ListStaff(ctx context.Context, tenantID uuid.UUID) ([]*StaffView, error)
}

type TenantQueries interface {
	// PublicPage assembles everything the tenant booking page needs: the
	// branding record plus the service and staff catalogs. Branding comes
	// from the store on every request; nothing is cached client-side.
	PublicPage(ctx context.Context, slug string) (*TenantPageView, error)
}

type tenantQueriesImpl struct {
	readStore TenantReadStore
}

func NewTenantQueries(readStore TenantReadStore) TenantQueries {
	return &tenantQueriesImpl{readStore: readStore}
}

func (q *tenantQueriesImpl) PublicPage(ctx context.Context, slug string) (*TenantPageView, error) {
	tenantView, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, errs.Wrap(err, "failed to load tenant page")
	}
	if !tenantView.IsActive {
		return nil, ErrTenantNotFound
	}

	services, err := q.readStore.ListServices(ctx, tenantView.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}

	staffMembers, err := q.readStore.ListStaff(ctx, tenantView.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list staff")
	}

	return &TenantPageView{
		Tenant:   tenantView,
		Services: services,
		Staff:    staffMembers,
	}, nil
}
