package models

import (
	"time"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
)

// AppointmentResponse ответ с данными бронирования.
// Поля услуги присоединяются на момент чтения: если услуга удалена,
// они опускаются, а бронирование остаётся читаемым.
type AppointmentResponse struct {
	ID            int64     `json:"id"`
	ServiceID     int64     `json:"serviceId"`
	ServiceName   *string   `json:"serviceName,omitempty"`
	DurationMin   *int      `json:"durationMin,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone *string   `json:"customerPhone,omitempty"`
	StartAt       time.Time `json:"startAt"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
}

// AppointmentListResponse ответ со списком бронирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.AppointmentWithService) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:            a.ID,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		DurationMin:   a.ServiceDuration,
		Price:         a.ServicePrice,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		StartAt:       a.StartAt,
		Status:        string(a.Status),
		Notes:         a.Notes,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.AppointmentWithService) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if dto := FromDomainAppointment(appt); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}
