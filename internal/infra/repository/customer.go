package repository

import (
	"context"
	"strings"

	"barberbook/internal/domain/customer"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4)`,
		c.ID(), c.Email().Value(), c.PasswordHash(), c.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, is_active, created_at
		FROM customers
		WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)),
	)

	var (
		id           uuid.UUID
		storedEmail  string
		passwordHash string
		isActive     bool
		createdAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &storedEmail, &passwordHash, &isActive, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan customer", err)
	}

	emailVO, err := customer.NewEmail(storedEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}

	return customer.ReconstructCustomer(id, emailVO, passwordHash, isActive, pgconv.TimeFromPgtype(createdAt)), nil
}
