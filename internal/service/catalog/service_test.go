package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	serviceRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/servicecatalog"
	"github.com/bizqueue/BQ-SchedulingService/internal/service/catalog/models"
	"github.com/bizqueue/BQ-SchedulingService/pkg/ptr"
)

type fakeServiceRepo struct {
	byID      *domain.Service
	byIDErr   error
	list      []*domain.Service
	listErr   error
	createdIn *domain.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	f.createdIn = s
	out := *s
	out.ID = 5
	return &out, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.byID, f.byIDErr
}

func (f *fakeServiceRepo) GetByBusinessID(_ context.Context, _ int64) ([]*domain.Service, error) {
	return f.list, f.listErr
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ownerUser(businessID int64) *domain.User {
	return &domain.User{ID: 1, Role: domain.RoleOwner, BusinessID: ptr.Ptr(businessID)}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, &fakeUserRepo{user: ownerUser(10)}, nopLogger{})

	resp, err := svc.Create(context.Background(), 1, &models.CreateServiceRequest{
		Name:        "  Стрижка  ",
		DurationMin: 60,
		Price:       1500,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	// Имя триммится перед сохранением, услуга попадает в бизнес владельца
	assert.Equal(t, "Стрижка", repo.createdIn.Name)
	assert.Equal(t, int64(10), repo.createdIn.BusinessID)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeUserRepo{user: ownerUser(10)}, nopLogger{})

	cases := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"blank name", models.CreateServiceRequest{Name: " ", DurationMin: 60, Price: 100}},
		{"duration too short", models.CreateServiceRequest{Name: "Стрижка", DurationMin: 4, Price: 100}},
		{"duration too long", models.CreateServiceRequest{Name: "Стрижка", DurationMin: 481, Price: 100}},
		{"negative price", models.CreateServiceRequest{Name: "Стрижка", DurationMin: 60, Price: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_NoBusiness(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner}}, nopLogger{})

	_, err := svc.Create(context.Background(), 1, &models.CreateServiceRequest{
		Name:        "Стрижка",
		DurationMin: 60,
		Price:       100,
	})
	assert.ErrorIs(t, err, ErrNoBusiness)
}

func TestList_Success(t *testing.T) {
	repo := &fakeServiceRepo{list: []*domain.Service{
		{ID: 5, BusinessID: 10, Name: "Стрижка", DurationMin: 60, Price: 1500},
		{ID: 6, BusinessID: 10, Name: "Бритьё", DurationMin: 30, Price: 800},
	}}
	svc := NewService(repo, &fakeUserRepo{user: ownerUser(10)}, nopLogger{})

	resp, err := svc.List(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Стрижка", resp.Services[0].Name)
}

func TestResolve_Success(t *testing.T) {
	repo := &fakeServiceRepo{byID: &domain.Service{ID: 5, BusinessID: 10, Name: "Стрижка", DurationMin: 60, Price: 1500}}
	svc := NewService(repo, &fakeUserRepo{user: ownerUser(10)}, nopLogger{})

	service, err := svc.Resolve(context.Background(), 5)

	require.NoError(t, err)
	// Планировщик получает domain модель с business_id для проверки принадлежности
	assert.Equal(t, int64(5), service.ID)
	assert.Equal(t, int64(10), service.BusinessID)
}

func TestResolve_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{byIDErr: serviceRepo.ErrServiceNotFound},
		&fakeUserRepo{user: ownerUser(10)}, nopLogger{})

	_, err := svc.Resolve(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
