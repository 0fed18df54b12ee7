package create_business

import (
	"context"

	businessModels "github.com/bizqueue/BQ-SchedulingService/internal/service/business/models"
)

type BusinessService interface {
	Create(ctx context.Context, ownerID int64, req *businessModels.CreateBusinessRequest) (*businessModels.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
