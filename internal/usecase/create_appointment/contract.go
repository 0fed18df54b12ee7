package create_appointment

import (
	"context"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ServiceCatalog интерфейс каталога услуг: резолв услуги для планировщика
type ServiceCatalog interface {
	Resolve(ctx context.Context, serviceID int64) (*domain.Service, error)
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
