package domain

// Default working hours: слоты с 9:00 до 17:00 включительно, по одному на час
const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 17
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinBusinessNameLength     = 2
	MinServiceNameLength      = 2
	MaxNotesLength            = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
