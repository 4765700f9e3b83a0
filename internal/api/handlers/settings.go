package handlers

import (
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// SettingsResponse настройки администратора без хеша пароля
type SettingsResponse struct {
	Profile      domain.CompanyProfile `json:"profile"`
	Username     string                `json:"username"`
	Preferences  domain.Preferences    `json:"preferences"`
	LastBackup   *string               `json:"lastBackup"`
	DatabaseSize string                `json:"databaseSize"`
}

// NewSettingsResponse конвертирует настройки в HTTP ответ
func NewSettingsResponse(s domain.AdminSettings) *SettingsResponse {
	resp := &SettingsResponse{
		Profile:      s.Profile,
		Username:     s.Credentials.Username,
		Preferences:  s.Preferences,
		DatabaseSize: s.DatabaseSize,
	}
	if s.LastBackup != nil {
		at := s.LastBackup.UTC().Format(time.RFC3339)
		resp.LastBackup = &at
	}
	return resp
}
