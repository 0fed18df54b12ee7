package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	"github.com/bizqueue/BQ-SchedulingService/internal/service/business/models"
	"github.com/bizqueue/BQ-SchedulingService/pkg/ptr"
)

type fakeBusinessRepo struct {
	byID    *domain.Business
	byIDErr error
}

func (f *fakeBusinessRepo) Create(_ context.Context, b *domain.Business) (*domain.Business, error) {
	out := *b
	out.ID = 10
	out.IsActive = true
	return &out, nil
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	return f.byID, f.byIDErr
}

type fakeUserRepo struct {
	user    *domain.User
	userErr error
	linkErr error
	linked  bool
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.userErr
}

func (f *fakeUserRepo) LinkBusiness(_ context.Context, _, _ int64) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.linked = true
	return nil
}

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateBusinessRequest {
	return &models.CreateBusinessRequest{
		Name:     "Барбершоп у Михаила",
		Category: "barbershop",
		Phone:    "+7 900 000-00-00",
		Address:  "Москва, ул. Ленина, 1",
	}
}

func TestCreate_Success(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner}}
	svc := NewService(&fakeBusinessRepo{}, users, passthroughTxManager{}, nopLogger{})

	resp, err := svc.Create(context.Background(), 1, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.True(t, users.linked)
}

func TestCreate_AlreadyHasBusiness(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner, BusinessID: ptr.Ptr(int64(5))}}
	svc := NewService(&fakeBusinessRepo{}, users, passthroughTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), 1, validCreateRequest())
	assert.ErrorIs(t, err, ErrAlreadyHasBusiness)
}

func TestCreate_ConcurrentLinkConflict(t *testing.T) {
	// Привязка не сработала: другой запрос успел привязать бизнес первым
	users := &fakeUserRepo{
		user:    &domain.User{ID: 1, Role: domain.RoleOwner},
		linkErr: userRepo.ErrUserNotFound,
	}
	svc := NewService(&fakeBusinessRepo{}, users, passthroughTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), 1, validCreateRequest())
	assert.ErrorIs(t, err, ErrAlreadyHasBusiness)
}

func TestCreate_Validation(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner}}
	svc := NewService(&fakeBusinessRepo{}, users, passthroughTxManager{}, nopLogger{})

	req := validCreateRequest()
	req.Name = "  "

	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetMine_Success(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner, BusinessID: ptr.Ptr(int64(10))}}
	businesses := &fakeBusinessRepo{byID: &domain.Business{ID: 10, Name: "Барбершоп"}}
	svc := NewService(businesses, users, passthroughTxManager{}, nopLogger{})

	resp, err := svc.GetMine(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Барбершоп", resp.Name)
}

func TestGetMine_NoBusiness(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner}}
	svc := NewService(&fakeBusinessRepo{}, users, passthroughTxManager{}, nopLogger{})

	_, err := svc.GetMine(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}
