package export_data

import (
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// Export полная выгрузка состояния
type Export struct {
	Settings     domain.AdminSettings  `json:"settings"`
	Engineers    []*domain.Engineer    `json:"engineers"`
	Appointments []*domain.Appointment `json:"appointments"`
	ExportDate   time.Time             `json:"exportDate"`
}

// BackupResult результат резервного копирования
type BackupResult struct {
	At   time.Time
	Size string
	Path string // пусто, если каталог для копий не задан
}

// CSVHeader колонки выгрузки записей
var CSVHeader = []string{"Name", "Email", "Phone", "Service", "Date", "Time", "Status", "Engineer"}

// sizedState the part of the state whose encoded size is reported as databaseSize
type sizedState struct {
	Settings     domain.AdminSettings  `json:"settings"`
	Engineers    []*domain.Engineer    `json:"engineers"`
	Appointments []*domain.Appointment `json:"appointments"`
}
