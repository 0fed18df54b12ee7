package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	apptRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/appointment"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	catalogService "github.com/bizqueue/BQ-SchedulingService/internal/service/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	apptRepo AppointmentRepository
	catalog  ServiceCatalog
	userRepo UserRepository
	calendar *domain.WorkingCalendar
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalog ServiceCatalog,
	userRepo UserRepository,
	calendar *domain.WorkingCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		catalog:  catalog,
		userRepo: userRepo,
		calendar: calendar,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Доступность слота здесь не проверяется: create — одиночный атомарный INSERT,
// и единственный арбитр конфликта — уникальный индекс (business_id, start_at)
// в хранилище. Из двух конкурентных запросов на один слот ровно один получает
// бронирование, второй — ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, service=%d, start_at=%s",
		req.UserID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим бизнес аутентифицированного владельца
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d not found", req.UserID)
			return nil, ErrNoBusiness
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.HasBusiness() {
		uc.logger.Warn("CreateAppointment: user id=%d has no linked business", req.UserID)
		return nil, ErrNoBusiness
	}
	businessID := *user.BusinessID

	// 3. Услуга должна существовать и принадлежать этому бизнесу.
	// Чужая услуга даёт тот же ErrServiceNotFound, чтобы не раскрывать её существование.
	service, err := uc.catalog.Resolve(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.BusinessID != businessID {
		uc.logger.Warn("CreateAppointment: service id=%d belongs to business=%d, not business=%d",
			req.ServiceID, service.BusinessID, businessID)
		return nil, ErrServiceNotFound
	}

	// 4. Час начала должен входить в рабочий календарь
	if err := validateStartAt(uc.calendar, req.StartAt); err != nil {
		uc.logger.Warn("CreateAppointment: start_at validation failed: %v", err)
		return nil, err
	}

	// 5. Атомарная вставка; конфликт слота приходит из хранилища
	appt := &domain.Appointment{
		BusinessID:    businessID,
		ServiceID:     req.ServiceID,
		StartAt:       req.StartAt,
		Status:        domain.StatusScheduled,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	}

	created, err := uc.apptRepo.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, apptRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot taken: business=%d, start_at=%s",
				businessID, req.StartAt.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d for business=%d",
		created.ID, businessID)

	return &Response{
		AppointmentID: created.ID,
		BusinessID:    created.BusinessID,
		ServiceID:     created.ServiceID,
		StartAt:       created.StartAt,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
	}, nil
}
