package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bizqueue/BQ-SchedulingService/internal/api/handlers"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	apptService "github.com/bizqueue/BQ-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID бронирования"
	msgAppointmentNotFound  = "бронирование не найдено"
	msgNoBusiness           = "у пользователя нет бизнеса"
	msgUnauthorized         = "требуется аутентификация"
	msgCancelled            = "бронирование отменено"
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

// Handle DELETE /api/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /appointments/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentIDStr := mux.Vars(r)["appointmentId"]
	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, appointmentID); err != nil {
		switch {
		case errors.Is(err, apptService.ErrNoBusiness):
			h.logger.Warn("DELETE /appointments/{id} - User has no business: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNoBusiness)

		case errors.Is(err, apptService.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel appointment: appointment_id=%d, user_id=%d, error=%v",
				appointmentID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgCancelled})
}
