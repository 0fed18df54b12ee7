package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	"github.com/bizqueue/BQ-SchedulingService/internal/service/auth/models"
)

type fakeUserRepo struct {
	createErr error
	byEmail   *domain.User
	emailErr  error
	created   *domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 42
	f.created = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return f.byEmail, f.emailErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeUserRepo) *Service {
	return NewService(repo, NewTokenManager("test-secret", time.Hour), nopLogger{})
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Анна Петрова",
		Email:    "Anna@Example.com",
		Password: "secret123",
		Role:     "OWNER",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(42), resp.User.ID)
	// Email нормализуется, пароль хранится только хэшем
	assert.Equal(t, "anna@example.com", repo.created.Email)
	assert.NotEqual(t, "secret123", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret123")))
}

func TestRegister_Validation(t *testing.T) {
	svc := newService(&fakeUserRepo{})

	cases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"blank name", models.RegisterRequest{Email: "a@b.c", Password: "secret123", Role: "OWNER"}},
		{"bad email", models.RegisterRequest{FullName: "A", Email: "not-an-email", Password: "secret123", Role: "OWNER"}},
		{"short password", models.RegisterRequest{FullName: "A", Email: "a@b.c", Password: "123", Role: "OWNER"}},
		{"unknown role", models.RegisterRequest{FullName: "A", Email: "a@b.c", Password: "secret123", Role: "ADMIN"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := newService(&fakeUserRepo{createErr: userRepo.ErrEmailTaken})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		FullName: "Анна",
		Email:    "anna@example.com",
		Password: "secret123",
		Role:     "OWNER",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newService(&fakeUserRepo{byEmail: &domain.User{
		ID:           42,
		Email:        "anna@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleOwner,
	}})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "anna@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(42), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newService(&fakeUserRepo{byEmail: &domain.User{
		ID:           42,
		PasswordHash: string(hash),
		Role:         domain.RoleOwner,
	}})

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newService(&fakeUserRepo{emailErr: userRepo.ErrUserNotFound})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	// Неизвестный email неотличим от неверного пароля
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
