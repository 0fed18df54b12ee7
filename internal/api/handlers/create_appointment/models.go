package create_appointment

import (
	"time"

	createAppointment "github.com/bizqueue/BQ-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID     int64   `json:"serviceId"`
	StartAt       string  `json:"startAt"` // RFC3339, например "2025-10-15T11:00:00+03:00"
	CustomerName  string  `json:"customerName"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentCreatedResponse HTTP response model
type AppointmentCreatedResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	BusinessID    int64  `json:"businessId"`
	ServiceID     int64  `json:"serviceId"`
	StartAt       string `json:"startAt"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:        userID,
		ServiceID:     r.ServiceID,
		StartAt:       startAt,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentCreatedResponse {
	return &AppointmentCreatedResponse{
		AppointmentID: resp.AppointmentID,
		BusinessID:    resp.BusinessID,
		ServiceID:     resp.ServiceID,
		StartAt:       resp.StartAt.Format(time.RFC3339),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
