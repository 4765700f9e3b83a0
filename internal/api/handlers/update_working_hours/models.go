package update_working_hours

import (
	"strings"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/pkg/types"
)

// DayScheduleRequest часы одного дня недели
type DayScheduleRequest struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	WorkingHours map[string]DayScheduleRequest `json:"workingHours"`
}

// ToDomain конвертирует запрос; ключи дней приводятся к нижнему регистру,
// время "9:30" нормализуется до "09:30". Некорректное время остаётся как есть
// и отклоняется валидацией.
func (r *UpdateWorkingHoursRequest) ToDomain() domain.WorkingHours {
	hours := make(domain.WorkingHours, len(r.WorkingHours))
	for day, s := range r.WorkingHours {
		hours[strings.ToLower(strings.TrimSpace(day))] = domain.DaySchedule{
			Start:     normalizeTime(s.Start),
			End:       normalizeTime(s.End),
			Available: s.Available,
		}
	}
	return hours
}

func normalizeTime(raw string) types.TimeString {
	t, err := types.NewTimeStringFromString(strings.TrimSpace(raw))
	if err != nil {
		return types.TimeString(raw)
	}
	return t
}
