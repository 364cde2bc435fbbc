package queries

import (
	"context"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type OwnerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OwnerView, error)
}

type CustomerQueries interface {
	CurrentCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type OwnerQueries interface {
	CurrentOwner(ctx context.Context, id uuid.UUID) (*OwnerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) CurrentCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to load customer")
	}
	return view, nil
}

var ErrOwnerNotFound = errs.New("owner not found")

type ownerQueriesImpl struct {
	readStore OwnerReadStore
}

func NewOwnerQueries(readStore OwnerReadStore) OwnerQueries {
	return &ownerQueriesImpl{readStore: readStore}
}

func (q *ownerQueriesImpl) CurrentOwner(ctx context.Context, id uuid.UUID) (*OwnerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, errs.Wrap(err, "failed to load owner")
	}
	return view, nil
}
