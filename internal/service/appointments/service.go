package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/appointment"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	"github.com/bizqueue/BQ-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с бронированиями владельца
type Service struct {
	apptRepo AppointmentRepository
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	apptRepo AppointmentRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		apptRepo: apptRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// List получает все активные бронирования бизнеса владельца,
// отсортированные по start_at по возрастанию, с данными услуги на момент чтения
func (s *Service) List(ctx context.Context, userID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d", userID)

	businessID, err := s.resolveBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.apptRepo.ListWithService(ctx, businessID)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for business=%d", len(appointments), businessID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Delete отменяет бронирование владельца (мягкое удаление).
// Чужое или несуществующее бронирование даёт ErrAppointmentNotFound,
// не раскрывая, существует ли запись у другого бизнеса.
func (s *Service) Delete(ctx context.Context, userID int64, appointmentID int64) error {
	s.logger.Info("Delete: cancelling appointment id=%d by user=%d", appointmentID, userID)

	businessID, err := s.resolveBusiness(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.apptRepo.Cancel(ctx, appointmentID, businessID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found for business=%d", appointmentID, businessID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully cancelled appointment id=%d for business=%d", appointmentID, businessID)
	return nil
}

// resolveBusiness возвращает бизнес аутентифицированного пользователя
func (s *Service) resolveBusiness(ctx context.Context, userID int64) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("resolveBusiness: user id=%d not found", userID)
			return 0, ErrNoBusiness
		}
		s.logger.Error("resolveBusiness: failed to get user id=%d: %v", userID, err)
		return 0, fmt.Errorf("%w: resolveBusiness - failed to get user: %v", ErrInternal, err)
	}

	if !user.HasBusiness() {
		s.logger.Warn("resolveBusiness: user id=%d has no linked business", userID)
		return 0, ErrNoBusiness
	}

	return *user.BusinessID, nil
}
