package domain

import "time"

// CompanyProfile public contact details of the business
type CompanyProfile struct {
	CompanyName string `json:"companyName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// Credentials admin login; only the bcrypt hash is stored
type Credentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Preferences admin toggles that shape the booking workflow
type Preferences struct {
	EmailNotifications    bool `json:"emailNotifications"`
	AutoConfirm           bool `json:"autoConfirm"`
	MaintenanceMode       bool `json:"maintenanceMode"`
	SessionTimeoutMinutes int  `json:"sessionTimeout" validate:"min=5,max=10080"`
}

// AdminSettings the persisted "adminSettings" record
type AdminSettings struct {
	Profile      CompanyProfile `json:"profile"`
	Credentials  Credentials    `json:"credentials"`
	Preferences  Preferences    `json:"preferences"`
	Schedule     ScheduleConfig `json:"schedule"`
	LastBackup   *time.Time     `json:"lastBackup"`
	DatabaseSize string         `json:"databaseSize"`
}

// DefaultPreferences notifications on, manual confirmation, 8h sessions
func DefaultPreferences() Preferences {
	return Preferences{
		EmailNotifications:    true,
		AutoConfirm:           false,
		MaintenanceMode:       false,
		SessionTimeoutMinutes: DefaultSessionTimeoutMinutes,
	}
}

// DefaultAdminSettings settings created on first start. The caller sets credentials.
func DefaultAdminSettings() AdminSettings {
	return AdminSettings{
		Profile: CompanyProfile{
			CompanyName: DefaultCompanyName,
			Email:       DefaultCompanyEmail,
			Phone:       DefaultCompanyPhone,
			Address:     DefaultCompanyAddress,
		},
		Preferences:  DefaultPreferences(),
		Schedule:     DefaultScheduleConfig(),
		DatabaseSize: "0 KB",
	}
}

// Clone returns a deep copy
func (s AdminSettings) Clone() AdminSettings {
	out := s
	out.Schedule = s.Schedule.Clone()
	if s.LastBackup != nil {
		t := *s.LastBackup
		out.LastBackup = &t
	}
	return out
}

// CompanyAvailability the read-only projection consumed by the booking flow
type CompanyAvailability struct {
	WorkingHours WorkingHours  `json:"workingHours"`
	BlockedDates []BlockedDate `json:"blockedDates"`
	LastUpdated  time.Time     `json:"lastUpdated"`
}

// NewCompanyAvailability projects the schedule at time now
func NewCompanyAvailability(schedule ScheduleConfig, now time.Time) CompanyAvailability {
	c := schedule.Clone()
	return CompanyAvailability{
		WorkingHours: c.WorkingHours,
		BlockedDates: c.BlockedDates,
		LastUpdated:  now,
	}
}

// Schedule returns the projection as a ScheduleConfig
func (c CompanyAvailability) Schedule() ScheduleConfig {
	return ScheduleConfig{WorkingHours: c.WorkingHours, BlockedDates: c.BlockedDates}.Clone()
}
