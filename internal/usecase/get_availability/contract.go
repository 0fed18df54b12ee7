package get_availability

import (
	"context"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	// GetScheduledInRange получает активные бронирования бизнеса в интервале [From, To)
	GetScheduledInRange(ctx context.Context, filter domain.AppointmentsRangeFilter) ([]*domain.Appointment, error)
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
