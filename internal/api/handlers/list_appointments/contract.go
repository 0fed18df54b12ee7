package list_appointments

import (
	"context"

	apptModels "github.com/bizqueue/BQ-SchedulingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	List(ctx context.Context, userID int64) (*apptModels.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
