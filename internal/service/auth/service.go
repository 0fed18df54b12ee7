package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	"github.com/bizqueue/BQ-SchedulingService/internal/service/auth/models"
)

const minPasswordLength = 6

// Service сервис регистрации и аутентификации
type Service struct {
	userRepo UserRepository
	tokens   *TokenManager
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, tokens *TokenManager, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя и выдает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: registering user email=%q role=%q", req.Email, req.Role)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%q: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Role:         domain.UserRole(req.Role),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%q already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%q: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Issue(created.ID, string(created.Role))
	if err != nil {
		s.logger.Error("Register: failed to issue token for user=%d: %v", created.ID, err)
		return nil, err
	}

	s.logger.Info("Register: successfully registered user id=%d", created.ID)
	return buildAuthResponse(token, created), nil
}

// Login проверяет учетные данные и выдает токен.
// Неизвестный email и неверный пароль дают одинаковую ошибку.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: login attempt for email=%q", req.Email)

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%q", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%q: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", user.ID, err)
		return nil, err
	}

	s.logger.Info("Login: successful login for user=%d", user.ID)
	return buildAuthResponse(token, user), nil
}

func buildAuthResponse(token string, u *domain.User) *models.AuthResponse {
	return &models.AuthResponse{
		Token: token,
		User: models.UserResponse{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     string(u.Role),
		},
	}
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if !domain.IsValidRole(req.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
