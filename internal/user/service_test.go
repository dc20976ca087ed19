package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, password string, role Role) (User, error) {
	args := m.Called(ctx, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Success issues a token", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, "asha@example.com", mock.Anything, RoleUser).
			Return(User{ID: 1, Email: "asha@example.com", Role: RoleUser}, nil).Once()

		token, u, err := svc.Register(context.Background(), "asha@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)

		// Stored password must be a bcrypt hash, never the plaintext.
		hashed := repo.Calls[0].Arguments.String(2)
		assert.NotEqual(t, "secret123", hashed)
		assert.True(t, CheckPasswordHash("secret123", hashed))

		repo.AssertExpectations(t)
	})

	t.Run("Duplicate email maps to ErrEmailExists", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, "asha@example.com", mock.Anything, RoleUser).
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)).Once()

		_, _, err := svc.Register(context.Background(), "asha@example.com", "secret123")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := HashPassword("secret123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, "asha@example.com").
			Return(User{ID: 1, Email: "asha@example.com", Password: hashed, Role: RoleUser}, nil).Once()

		token, u, err := svc.Login(context.Background(), "asha@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, "nobody@example.com").
			Return(User{}, ErrUserNotFound).Once()

		_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, "asha@example.com").
			Return(User{ID: 1, Password: hashed}, nil).Once()

		_, _, err := svc.Login(context.Background(), "asha@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
