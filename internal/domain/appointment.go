package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a customer appointment in the business ledger
type Appointment struct {
	ID         int64
	BusinessID int64
	ServiceID  int64
	StartAt    time.Time
	Status     AppointmentStatus

	CustomerName  string
	CustomerPhone *string
	Notes         *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the appointment still occupies its slot
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// AppointmentWithService бронирование, обогащённое данными услуги на момент чтения.
// Поля услуги nullable: если услуга была удалена, бронирование всё равно читается.
type AppointmentWithService struct {
	Appointment
	ServiceName     *string
	ServiceDuration *int
	ServicePrice    *float64
}

// AppointmentsRangeFilter фильтр для выборки бронирований бизнеса за интервал времени
type AppointmentsRangeFilter struct {
	BusinessID int64     // Обязательный параметр
	From       time.Time // Начало интервала (включительно)
	To         time.Time // Конец интервала (исключительно)
}
