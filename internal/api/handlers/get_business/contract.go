package get_business

import (
	"context"

	businessModels "github.com/bizqueue/BQ-SchedulingService/internal/service/business/models"
)

type BusinessService interface {
	GetMine(ctx context.Context, userID int64) (*businessModels.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
