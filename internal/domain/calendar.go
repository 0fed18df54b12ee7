package domain

import "time"

// WorkingCalendar defines the universe of bookable hour slots for any given day.
// Часы фиксированы для всех дней недели: один слот на каждый целый час из Hours.
// Таймзона передаётся явно, а не берётся из окружения процесса.
type WorkingCalendar struct {
	location *time.Location
	hours    []int
}

// NewWorkingCalendar создает календарь с часами [openHour, closeHour] включительно
func NewWorkingCalendar(location *time.Location, openHour, closeHour int) *WorkingCalendar {
	if location == nil {
		location = time.Local
	}
	hours := make([]int, 0, closeHour-openHour+1)
	for h := openHour; h <= closeHour; h++ {
		hours = append(hours, h)
	}
	return &WorkingCalendar{location: location, hours: hours}
}

// DefaultWorkingCalendar возвращает календарь по умолчанию: 9:00-17:00, локальная таймзона
func DefaultWorkingCalendar() *WorkingCalendar {
	return NewWorkingCalendar(time.Local, DefaultOpenHour, DefaultCloseHour)
}

// Hours returns the ordered list of bookable hour-of-day values
func (c *WorkingCalendar) Hours() []int {
	out := make([]int, len(c.hours))
	copy(out, c.hours)
	return out
}

// ContainsHour returns true if the given hour-of-day is bookable
func (c *WorkingCalendar) ContainsHour(hour int) bool {
	for _, h := range c.hours {
		if h == hour {
			return true
		}
	}
	return false
}

// Location returns the calendar timezone
func (c *WorkingCalendar) Location() *time.Location {
	return c.location
}

// DayBounds returns the half-open interval [date 00:00, next day 00:00) in the
// calendar timezone. Верхняя граница исключается: бронирование ровно в полночь
// следующего дня относится уже к следующему дню.
func (c *WorkingCalendar) DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.location)
	return start, start.AddDate(0, 0, 1)
}

// HourOf truncates an instant to its hour-of-day component in the calendar timezone
func (c *WorkingCalendar) HourOf(t time.Time) int {
	return t.In(c.location).Hour()
}
