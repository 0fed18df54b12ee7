package register

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	authService "github.com/bizqueue/BQ-SchedulingService/internal/service/auth"
	authModels "github.com/bizqueue/BQ-SchedulingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные регистрации"
	msgEmailTaken         = "email уже зарегистрирован"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req authModels.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, authService.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email already taken: email=%q", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered successfully: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
