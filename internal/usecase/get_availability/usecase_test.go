package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	"github.com/bizqueue/BQ-SchedulingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.AppointmentsRangeFilter
}

func (f *fakeAppointmentRepo) GetScheduledInRange(_ context.Context, filter domain.AppointmentsRangeFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	return f.appointments, f.err
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

func owner(businessID int64) *domain.User {
	return &domain.User{
		ID:         1,
		Role:       domain.RoleOwner,
		BusinessID: ptr.Ptr(businessID),
	}
}

func TestExecute_AllSlotsFree(t *testing.T) {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeUserRepo{user: owner(10)}, calendar, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 1,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "hour %d should be free", slot.Hour)
	}
	assert.Equal(t, 9, resp.Slots[0].Hour)
	assert.Equal(t, 17, resp.Slots[8].Hour)
}

func TestExecute_TakenHourMarked(t *testing.T) {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartAt: time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC), Status: domain.StatusScheduled},
		},
	}
	uc := NewUseCase(apptRepo, &fakeUserRepo{user: owner(10)}, calendar, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 1,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	for _, slot := range resp.Slots {
		if slot.Hour == 11 {
			assert.False(t, slot.Available, "hour 11 should be taken")
		} else {
			assert.True(t, slot.Available, "hour %d should be free", slot.Hour)
		}
	}
}

func TestExecute_AppointmentOutsideWorkingHoursIgnored(t *testing.T) {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	// Бронирование в 23:30 не занимает ни один рабочий час
	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartAt: time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC), Status: domain.StatusScheduled},
		},
	}
	uc := NewUseCase(apptRepo, &fakeUserRepo{user: owner(10)}, calendar, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 1,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 9)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "hour %d should be free", slot.Hour)
	}
}

func TestExecute_DayBoundsPassedToRepository(t *testing.T) {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	apptRepo := &fakeAppointmentRepo{}
	uc := NewUseCase(apptRepo, &fakeUserRepo{user: owner(10)}, calendar, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), apptRepo.gotFilter.BusinessID)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), apptRepo.gotFilter.From)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), apptRepo.gotFilter.To)
}

func TestExecute_UserWithoutBusiness(t *testing.T) {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeUserRepo{user: &domain.User{ID: 1, Role: domain.RoleOwner}}, calendar, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrNoBusiness)
}

func TestExecute_UnknownUser(t *testing.T) {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeUserRepo{err: userRepo.ErrUserNotFound}, calendar, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrNoBusiness)
}

func TestExecute_InvalidInput(t *testing.T) {
	calendar := domain.NewWorkingCalendar(time.UTC, 9, 17)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeUserRepo{user: owner(10)}, calendar, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
