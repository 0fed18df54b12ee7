package get_availability

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	getAvailability "github.com/bizqueue/BQ-SchedulingService/internal/usecase/get_availability"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoBusiness   = "у пользователя нет бизнеса"
	msgUnauthorized = "требуется аутентификация"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/appointments/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/availability - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments/availability - Missing date: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/availability - Invalid date format: user_id=%d, date=%q, error=%v", userID, dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /appointments/availability - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrNoBusiness):
			h.logger.Warn("GET /appointments/availability - User has no business: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNoBusiness)

		default:
			h.logger.Error("GET /appointments/availability - Failed to get availability: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/availability - Availability retrieved successfully: user_id=%d, date=%s, slots_count=%d",
		userID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
