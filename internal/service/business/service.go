package business

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	"github.com/bizqueue/BQ-SchedulingService/internal/service/business/models"
)

// Service сервис управления бизнесами
type Service struct {
	businessRepo BusinessRepository
	userRepo     UserRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(
	businessRepo BusinessRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает бизнес и привязывает его к владельцу.
// Вставка бизнеса и привязка владельца выполняются в одной транзакции:
// бизнес без владельца в базе остаться не должен.
func (s *Service) Create(ctx context.Context, ownerID int64, req *models.CreateBusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Create: creating business for owner=%d, name=%q", ownerID, req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for owner=%d: %v", ownerID, err)
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Create: owner id=%d not found", ownerID)
			return nil, fmt.Errorf("%w: owner not found", ErrInvalidInput)
		}
		s.logger.Error("Create: failed to get owner id=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Create - failed to get owner: %v", ErrInternal, err)
	}

	if owner.HasBusiness() {
		s.logger.Warn("Create: owner id=%d already has business id=%d", ownerID, *owner.BusinessID)
		return nil, ErrAlreadyHasBusiness
	}

	var created *domain.Business
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.businessRepo.Create(ctx, &domain.Business{
			OwnerID:  ownerID,
			Name:     strings.TrimSpace(req.Name),
			Category: strings.TrimSpace(req.Category),
			Phone:    strings.TrimSpace(req.Phone),
			Address:  strings.TrimSpace(req.Address),
		})
		if err != nil {
			return fmt.Errorf("create business: %w", err)
		}

		// LinkBusiness обновляет только строки с business_id IS NULL,
		// поэтому гонка двух параллельных Create откатит одну из транзакций.
		if err := s.userRepo.LinkBusiness(ctx, ownerID, created.ID); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrAlreadyHasBusiness
			}
			return fmt.Errorf("link owner: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyHasBusiness) {
			s.logger.Warn("Create: concurrent business creation detected for owner=%d", ownerID)
			return nil, ErrAlreadyHasBusiness
		}
		s.logger.Error("Create: transaction failed for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created business id=%d for owner=%d", created.ID, ownerID)
	return models.FromDomainBusiness(created), nil
}

// GetMine возвращает бизнес аутентифицированного владельца
func (s *Service) GetMine(ctx context.Context, userID int64) (*models.BusinessResponse, error) {
	s.logger.Info("GetMine: fetching business for user=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetMine: user id=%d not found", userID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetMine: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetMine - failed to get user: %v", ErrInternal, err)
	}

	if !user.HasBusiness() {
		s.logger.Warn("GetMine: user id=%d has no linked business", userID)
		return nil, ErrBusinessNotFound
	}

	business, err := s.businessRepo.GetByID(ctx, *user.BusinessID)
	if err != nil {
		s.logger.Error("GetMine: failed to get business id=%d: %v", *user.BusinessID, err)
		return nil, fmt.Errorf("%w: GetMine - failed to get business: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(business), nil
}

func validateCreateRequest(req *models.CreateBusinessRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: business name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: business category is required", ErrInvalidInput)
	}
	return nil
}
