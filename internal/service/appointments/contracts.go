package appointments

import (
	"context"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	ListWithService(ctx context.Context, businessID int64) ([]*domain.AppointmentWithService, error)
	Cancel(ctx context.Context, id int64, businessID int64) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
