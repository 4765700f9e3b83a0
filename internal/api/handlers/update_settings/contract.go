package update_settings

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type SettingsService interface {
	UpdateProfile(ctx context.Context, profile domain.CompanyProfile) (domain.AdminSettings, error)
	UpdatePreferences(ctx context.Context, prefs domain.Preferences) (domain.AdminSettings, error)
	Settings(ctx context.Context) (domain.AdminSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
