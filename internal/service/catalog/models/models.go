package models

import "github.com/bizqueue/BQ-SchedulingService/internal/domain"

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	DurationMin int     `json:"durationMin"`
	Price       float64 `json:"price"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DurationMin int     `json:"durationMin"`
	Price       float64 `json:"price"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		DurationMin: s.DurationMin,
		Price:       s.Price,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		if dto := FromDomainService(s); dto != nil {
			resp.Services = append(resp.Services, *dto)
		}
	}
	return resp
}
