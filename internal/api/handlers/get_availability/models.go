package get_availability

import (
	"time"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	getAvailability "github.com/bizqueue/BQ-SchedulingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date         string     `json:"date"`
	Availability []SlotInfo `json:"availability"`
}

// SlotInfo доступность одного часового слота
type SlotInfo struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(userID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		UserID: userID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotInfo, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotInfo{
			Hour:      slot.Hour,
			Available: slot.Available,
		})
	}

	return &AvailabilityResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Availability: slots,
	}
}
