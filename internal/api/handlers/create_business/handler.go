package create_business

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	businessService "github.com/bizqueue/BQ-SchedulingService/internal/service/business"
	businessModels "github.com/bizqueue/BQ-SchedulingService/internal/service/business/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бизнеса"
	msgAlreadyHasBusiness = "у владельца уже есть бизнес"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/business
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /business - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req businessModels.CreateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /business - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, businessService.ErrInvalidInput):
			h.logger.Warn("POST /business - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, businessService.ErrAlreadyHasBusiness):
			h.logger.Warn("POST /business - Owner already has business: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyHasBusiness)

		default:
			h.logger.Error("POST /business - Failed to create business: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /business - Business created successfully: business_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
