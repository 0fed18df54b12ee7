package list_services

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	catalogService "github.com/bizqueue/BQ-SchedulingService/internal/service/catalog"
)

const (
	msgNoBusiness   = "у пользователя нет бизнеса"
	msgUnauthorized = "требуется аутентификация"
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

// Handle GET /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /services - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrNoBusiness):
			h.logger.Warn("GET /services - User has no business: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNoBusiness)

		default:
			h.logger.Error("GET /services - Failed to list services: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: user_id=%d, count=%d", userID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
