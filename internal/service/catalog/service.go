package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	serviceRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/servicecatalog"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	"github.com/bizqueue/BQ-SchedulingService/internal/service/catalog/models"
)

// Service сервис каталога услуг.
// Для планировщика каталог read-only (Resolve); создание и список услуг
// принадлежат владельцу бизнеса.
type Service struct {
	serviceRepo ServiceRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create создает услугу для бизнеса владельца
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service for user=%d, name=%q", userID, req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for user=%d: %v", userID, err)
		return nil, err
	}

	businessID, err := s.resolveBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	service := &domain.Service{
		BusinessID:  businessID,
		Name:        strings.TrimSpace(req.Name),
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d for business=%d", created.ID, businessID)
	return models.FromDomainService(created), nil
}

// List получает услуги бизнеса владельца, сначала новые
func (s *Service) List(ctx context.Context, userID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services for user=%d", userID)

	businessID, err := s.resolveBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services for business=%d", len(services), businessID)
	return models.FromDomainServiceList(services), nil
}

// Resolve возвращает услугу по ID для планировщика (read-only).
// Отдает domain модель целиком: планировщику нужен business_id услуги
// для проверки принадлежности.
func (s *Service) Resolve(ctx context.Context, serviceID int64) (*domain.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}
	return service, nil
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

func validateCreateRequest(req *models.CreateServiceRequest) error {
	if len(strings.TrimSpace(req.Name)) < domain.MinServiceNameLength {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if req.DurationMin < domain.MinServiceDurationMinutes || req.DurationMin > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMin must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	return nil
}
