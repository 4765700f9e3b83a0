package get_calendar

import "github.com/m04kA/SIA-BookingService/internal/service/availability"

// CalendarQuery query параметры
type CalendarQuery struct {
	Year  int `schema:"year"`
	Month int `schema:"month"`
}

// CalendarDayResponse один день календаря
type CalendarDayResponse struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	Weekday    string `json:"weekday"`
	State      string `json:"state"`
	Selectable bool   `json:"selectable"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Days  []*CalendarDayResponse `json:"days"`
}

// FromServiceResponse конвертирует дни сервиса в HTTP response
func FromServiceResponse(year, month int, days []availability.CalendarDay) *CalendarResponse {
	resp := &CalendarResponse{
		Year:  year,
		Month: month,
		Days:  make([]*CalendarDayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, &CalendarDayResponse{
			Date:       d.Date,
			Day:        d.Day,
			Weekday:    d.Weekday,
			State:      string(d.State),
			Selectable: d.Selectable,
		})
	}
	return resp
}
