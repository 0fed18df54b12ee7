package create_service

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	catalogService "github.com/bizqueue/BQ-SchedulingService/internal/service/catalog"
	catalogModels "github.com/bizqueue/BQ-SchedulingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные услуги"
	msgNoBusiness         = "у пользователя нет бизнеса"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req catalogModels.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalogService.ErrNoBusiness):
			h.logger.Warn("POST /services - User has no business: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNoBusiness)

		default:
			h.logger.Error("POST /services - Failed to create service: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: service_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
