package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	apptRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/appointment"
	catalogService "github.com/bizqueue/BQ-SchedulingService/internal/service/catalog"
	"github.com/bizqueue/BQ-SchedulingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	err     error
	created *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *appt
	out.ID = 100
	out.CreatedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.created = &out
	return &out, nil
}

type fakeCatalog struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalog) Resolve(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
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

func validRequest() *Request {
	return &Request{
		UserID:       1,
		ServiceID:    5,
		StartAt:      time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
		CustomerName: "Анна Петрова",
	}
}

func newUseCase(ar *fakeAppointmentRepo, cat *fakeCatalog, ur *fakeUserRepo) *UseCase {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	return NewUseCase(ar, cat, ur, calendar, nopLogger{})
}

func ownerUser(businessID int64) *domain.User {
	return &domain.User{ID: 1, Role: domain.RoleOwner, BusinessID: ptr.Ptr(businessID)}
}

func ownService() *domain.Service {
	return &domain.Service{ID: 5, BusinessID: 10, Name: "Стрижка", DurationMin: 60, Price: 1500}
}

func TestExecute_Success(t *testing.T) {
	ar := &fakeAppointmentRepo{}
	uc := newUseCase(ar, &fakeCatalog{service: ownService()}, &fakeUserRepo{user: ownerUser(10)})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.AppointmentID)
	assert.Equal(t, int64(10), resp.BusinessID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	require.NotNil(t, ar.created)
	assert.Equal(t, int64(10), ar.created.BusinessID)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCatalog{service: ownService()}, &fakeUserRepo{user: ownerUser(10)})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero start", func(r *Request) { r.StartAt = time.Time{} }},
		{"blank customer name", func(r *Request) { r.CustomerName = "   " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NoBusiness(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCatalog{service: ownService()},
		&fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoBusiness)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCatalog{err: catalogService.ErrServiceNotFound},
		&fakeUserRepo{user: ownerUser(10)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ForeignServiceLooksNotFound(t *testing.T) {
	foreign := &domain.Service{ID: 5, BusinessID: 99, Name: "Чужая услуга", DurationMin: 30, Price: 500}
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCatalog{service: foreign}, &fakeUserRepo{user: ownerUser(10)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeCatalog{service: ownService()}, &fakeUserRepo{user: ownerUser(10)})

	req := validRequest()
	req.StartAt = time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_SlotTaken(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{err: apptRepo.ErrSlotTaken},
		&fakeCatalog{service: ownService()}, &fakeUserRepo{user: ownerUser(10)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}
