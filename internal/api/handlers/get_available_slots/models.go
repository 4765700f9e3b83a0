package get_available_slots

import "github.com/m04kA/SIA-BookingService/internal/service/availability"

// SlotsQuery query параметры
type SlotsQuery struct {
	Date string `schema:"date"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date      string   `json:"date"`
	Available bool     `json:"available"`
	Slots     []string `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(s *availability.DaySlots) *SlotsResponse {
	slots := s.Slots
	if slots == nil {
		slots = []string{}
	}
	return &SlotsResponse{
		Date:      s.Date,
		Available: s.Available,
		Slots:     slots,
	}
}
