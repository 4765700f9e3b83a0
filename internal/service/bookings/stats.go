package bookings

import (
	"context"
	"sort"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

const recentAppointmentsLimit = 5

// Stats собирает сводку для панели: счётчики, разбивки по услуге и статусу,
// подтверждённые записи на сегодня и последние созданные записи
func (s *Service) Stats(_ context.Context) *models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := domain.FormatDate(s.now())

	stats := &models.Stats{
		Total:         len(s.appointments),
		ByService:     make(map[string]int),
		ByStatus:      make(map[string]int),
		TodaySchedule: make([]*models.Appointment, 0),
		Recent:        make([]*models.Appointment, 0, recentAppointmentsLimit),
	}

	for _, a := range s.appointments {
		stats.ByService[a.Service]++
		stats.ByStatus[string(a.Status)]++

		switch a.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
			if a.Date == today {
				stats.TodaySchedule = append(stats.TodaySchedule, s.view(a))
			}
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}

	for _, e := range s.engineers {
		if e.IsActive() {
			stats.ActiveEngineers++
		}
	}

	sort.SliceStable(stats.TodaySchedule, func(i, j int) bool {
		return stats.TodaySchedule[i].Time < stats.TodaySchedule[j].Time
	})

	recent := make([]*domain.Appointment, len(s.appointments))
	copy(recent, s.appointments)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	for i := 0; i < len(recent) && i < recentAppointmentsLimit; i++ {
		stats.Recent = append(stats.Recent, s.view(recent[i]))
	}

	return stats
}
