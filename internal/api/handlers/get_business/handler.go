package get_business

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	businessService "github.com/bizqueue/BQ-SchedulingService/internal/service/business"
)

const (
	msgBusinessNotFound = "бизнес не найден"
	msgUnauthorized     = "требуется аутентификация"
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

// Handle GET /api/business/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /business/me - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetMine(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, businessService.ErrBusinessNotFound):
			h.logger.Warn("GET /business/me - Business not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /business/me - Failed to get business: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/me - Business retrieved successfully: business_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
