package create_appointment

import (
	"errors"
	"net/http"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	createAppointment "github.com/bizqueue/BQ-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStartAt      = "некорректный формат времени начала, ожидается RFC3339"
	msgInvalidInput        = "некорректные данные бронирования"
	msgNoBusiness          = "у пользователя нет бизнеса"
	msgServiceNotFound     = "услуга не найдена"
	msgSlotTaken           = "выбранный временной слот уже занят"
	msgOutsideWorkingHours = "время начала вне рабочих часов"
	msgUnauthorized        = "требуется аутентификация"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid startAt: user_id=%d, value=%q, error=%v", userID, req.StartAt, err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: user_id=%d, start_at=%q", userID, req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrNoBusiness):
			h.logger.Warn("POST /appointments - User has no business: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNoBusiness)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: user_id=%d, service_id=%d", userID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: user_id=%d, start_at=%q", userID, req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, service_id=%d, error=%v",
				userID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d",
		result.AppointmentID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
