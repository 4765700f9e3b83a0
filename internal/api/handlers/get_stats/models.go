package get_stats

import (
	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	Total           int                             `json:"total"`
	Pending         int                             `json:"pending"`
	Confirmed       int                             `json:"confirmed"`
	Cancelled       int                             `json:"cancelled"`
	ActiveEngineers int                             `json:"activeEngineers"`
	ByService       map[string]int                  `json:"byService"`
	ByStatus        map[string]int                  `json:"byStatus"`
	TodaySchedule   []*handlers.AppointmentResponse `json:"todaySchedule"`
	Recent          []*handlers.AppointmentResponse `json:"recent"`
}

// FromServiceResponse конвертирует статистику сервиса в HTTP response
func FromServiceResponse(s *models.Stats) *StatsResponse {
	return &StatsResponse{
		Total:           s.Total,
		Pending:         s.Pending,
		Confirmed:       s.Confirmed,
		Cancelled:       s.Cancelled,
		ActiveEngineers: s.ActiveEngineers,
		ByService:       s.ByService,
		ByStatus:        s.ByStatus,
		TodaySchedule:   handlers.NewAppointmentListResponse(s.TodaySchedule),
		Recent:          handlers.NewAppointmentListResponse(s.Recent),
	}
}
