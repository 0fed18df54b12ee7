package register

import (
	"context"

	authModels "github.com/bizqueue/BQ-SchedulingService/internal/service/auth/models"
)

type AuthService interface {
	Register(ctx context.Context, req *authModels.RegisterRequest) (*authModels.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
