package models

import "github.com/bizqueue/BQ-SchedulingService/internal/domain"

// CreateBusinessRequest запрос на создание бизнеса
type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// BusinessResponse ответ с данными бизнеса
type BusinessResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}
	return &BusinessResponse{
		ID:       b.ID,
		Name:     b.Name,
		Category: b.Category,
		Phone:    b.Phone,
		Address:  b.Address,
	}
}
