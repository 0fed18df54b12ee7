package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
)

// UseCase use case для получения доступности слотов на день
type UseCase struct {
	apptRepo AppointmentRepository
	userRepo UserRepository
	calendar *domain.WorkingCalendar
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	userRepo UserRepository,
	calendar *domain.WorkingCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		userRepo: userRepo,
		calendar: calendar,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступности.
// Чтение без snapshot-изоляции: клиент может увидеть слот свободным и всё равно
// получить отказ при создании — конфликт разрешает уникальный индекс хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, date=%s", req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим бизнес аутентифицированного владельца
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailability: user id=%d not found", req.UserID)
			return nil, ErrNoBusiness
		}
		uc.logger.Error("GetAvailability: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.HasBusiness() {
		uc.logger.Warn("GetAvailability: user id=%d has no linked business", req.UserID)
		return nil, ErrNoBusiness
	}

	// 3. Границы дня: [00:00, следующая полночь) в таймзоне календаря
	from, to := uc.calendar.DayBounds(req.Date)

	// 4. Активные бронирования бизнеса за день
	appointments, err := uc.apptRepo.GetScheduledInRange(ctx, domain.AppointmentsRangeFilter{
		BusinessID: *user.BusinessID,
		From:       from,
		To:         to,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Размечаем рабочие часы по занятости
	slots := computeAvailability(uc.calendar, appointments)

	uc.logger.Info("GetAvailability: business=%d, date=%s, slots=%d",
		*user.BusinessID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
