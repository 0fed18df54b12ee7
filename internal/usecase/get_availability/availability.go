package get_availability

import "github.com/bizqueue/BQ-SchedulingService/internal/domain"

// computeAvailability размечает рабочие часы календаря по занятости.
// Час занят, если хотя бы одно активное бронирование, усечённое до часа,
// попадает на него. Бронирования вне рабочих часов (например, 23:30 при
// календаре 9-17) на результат не влияют: их час отсутствует в списке.
func computeAvailability(calendar *domain.WorkingCalendar, appointments []*domain.Appointment) []HourAvailability {
	taken := make(map[int]bool, len(appointments))
	for _, appt := range appointments {
		taken[calendar.HourOf(appt.StartAt)] = true
	}

	hours := calendar.Hours()
	slots := make([]HourAvailability, len(hours))
	for i, hour := range hours {
		slots[i] = HourAvailability{
			Hour:      hour,
			Available: !taken[hour],
		}
	}

	return slots
}
