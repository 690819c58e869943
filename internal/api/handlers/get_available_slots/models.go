package get_available_slots

import (
	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	generateSlots "github.com/avlasova/GCA-SchedulingService/internal/usecase/generate_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date     string   `json:"date"`
	Timezone string   `json:"timezone"`
	Slots    []string `json:"slots"` // локальное время стены "HH:MM"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Slots:    resp.Slots,
	}
}
