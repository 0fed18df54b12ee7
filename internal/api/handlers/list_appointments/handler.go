package list_appointments

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	apptService "github.com/bizqueue/BQ-SchedulingService/internal/service/appointments"
)

const (
	msgNoBusiness   = "у пользователя нет бизнеса"
	msgUnauthorized = "требуется аутентификация"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, apptService.ErrNoBusiness):
			h.logger.Warn("GET /appointments - User has no business: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNoBusiness)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
