//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook/internal/domain/customer"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/jwt"
	"barberbook/internal/pkg/password"
	"barberbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	byEmail   map[string]*customer.Customer
	createErr error
	created   []*customer.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byEmail: map[string]*customer.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byEmail[c.Email().Value()]; ok {
		return infra.WrapRepoErr("insert customer", errors.New("unique violation"), infra.KindDuplicateKey)
	}
	r.byEmail[c.Email().Value()] = c
	r.created = append(r.created, c)
	return nil
}

func (r *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func seedCustomer(t *testing.T, repo *fakeCustomerRepo, email, plain string, active bool) *customer.Customer {
	t.Helper()
	addr, err := customer.NewEmail(email)
	require.NoError(t, err)
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)
	c := customer.ReconstructCustomer(uuid.New(), addr, hash, active, time.Now())
	repo.byEmail[addr.Value()] = c
	return c
}

func testCustomerJWT() jwt.CustomerService {
	return jwt.NewCustomerService("test-secret", time.Hour)
}

func TestCustomerAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("基本成功ケース", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		auth := commands.NewCustomerAuth(repo, testCustomerJWT())

		id, err := auth.Register(ctx, reqdto.CustomerRegisterRequest{
			Email:    "New@Example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		require.Len(t, repo.created, 1)
		stored := repo.created[0]
		assert.Equal(t, "new@example.com", stored.Email().Value())
		assert.NotEqual(t, "password123", stored.PasswordHash())
		assert.True(t, stored.IsActive())
	})

	t.Run("登録済みメールはErrEmailTaken", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		seedCustomer(t, repo, "taken@example.com", "password123", true)
		auth := commands.NewCustomerAuth(repo, testCustomerJWT())

		_, err := auth.Register(ctx, reqdto.CustomerRegisterRequest{
			Email:    "taken@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("不正なメールは認証エラー扱い", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		auth := commands.NewCustomerAuth(repo, testCustomerJWT())

		_, err := auth.Register(ctx, reqdto.CustomerRegisterRequest{
			Email:    "not-an-email",
			Password: "password123",
		})
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
		assert.Empty(t, repo.created)
	})

	t.Run("DB障害はそのまま伝播", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		repo.createErr = infra.WrapRepoErr("insert customer", errors.New("connection reset"))
		auth := commands.NewCustomerAuth(repo, testCustomerJWT())

		_, err := auth.Register(ctx, reqdto.CustomerRegisterRequest{
			Email:    "new@example.com",
			Password: "password123",
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, commands.ErrEmailTaken)
	})
}

func TestCustomerAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("基本成功ケース", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		seed := seedCustomer(t, repo, "user@example.com", "password123", true)
		jwtService := testCustomerJWT()
		auth := commands.NewCustomerAuth(repo, jwtService)

		result, err := auth.Login(ctx, reqdto.CustomerLoginRequest{
			Email:    "user@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, seed.ID(), result.CustomerID)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, seed.ID(), claims.SubjectID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("未知のメールとパスワード誤りは同じエラー", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		seedCustomer(t, repo, "user@example.com", "password123", true)
		auth := commands.NewCustomerAuth(repo, testCustomerJWT())

		_, unknownErr := auth.Login(ctx, reqdto.CustomerLoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		_, wrongErr := auth.Login(ctx, reqdto.CustomerLoginRequest{
			Email:    "user@example.com",
			Password: "wrongpassword",
		})
		assert.ErrorIs(t, unknownErr, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, commands.ErrInvalidCredentials)
	})

	t.Run("無効化済みアカウントはNG", func(t *testing.T) {
		repo := newFakeCustomerRepo()
		seedCustomer(t, repo, "inactive@example.com", "password123", false)
		auth := commands.NewCustomerAuth(repo, testCustomerJWT())

		_, err := auth.Login(ctx, reqdto.CustomerLoginRequest{
			Email:    "inactive@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, commands.ErrCustomerInactive)
	})
}
