package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartAt проверяет, что час начала входит в рабочий календарь
func validateStartAt(calendar *domain.WorkingCalendar, startAt time.Time) error {
	hour := calendar.HourOf(startAt)
	if !calendar.ContainsHour(hour) {
		return fmt.Errorf("%w: hour %d is not bookable", ErrOutsideWorkingHours, hour)
	}
	return nil
}
