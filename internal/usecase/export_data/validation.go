package export_data

import (
	"fmt"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// validateExport checks the whole export and reports every broken field
func validateExport(data *Export) error {
	verr := &domain.ValidationError{}
	if data == nil {
		verr.Add("settings", "is required")
		return verr
	}

	if err := data.Settings.Schedule.Validate(); err != nil {
		verr.Add("settings.schedule", err.Error())
	}
	if err := domain.Validate(data.Settings.Profile); err != nil {
		verr.Add("settings.profile", err.Error())
	}
	if err := domain.Validate(data.Settings.Preferences); err != nil {
		verr.Add("settings.preferences", err.Error())
	}
	if data.Settings.Credentials.Username == "" || data.Settings.Credentials.PasswordHash == "" {
		verr.Add("settings.credentials", "username and password hash are required")
	}

	engineerIDs := make(map[string]struct{}, len(data.Engineers))
	for i, e := range data.Engineers {
		field := fmt.Sprintf("engineers[%d]", i)
		switch {
		case e == nil:
			verr.Add(field, "is null")
			continue
		case e.ID == "":
			verr.Add(field+".id", "is required")
		case e.Status != domain.EngineerActive && e.Status != domain.EngineerInactive:
			verr.Add(field+".status", fmt.Sprintf("unknown status %q", e.Status))
		}
		if _, dup := engineerIDs[e.ID]; dup && e.ID != "" {
			verr.Add(field+".id", fmt.Sprintf("duplicate id %q", e.ID))
		}
		engineerIDs[e.ID] = struct{}{}
	}

	appointmentIDs := make(map[string]struct{}, len(data.Appointments))
	for i, a := range data.Appointments {
		field := fmt.Sprintf("appointments[%d]", i)
		switch {
		case a == nil:
			verr.Add(field, "is null")
			continue
		case a.ID == "":
			verr.Add(field+".id", "is required")
		case !a.Status.IsValid():
			verr.Add(field+".status", fmt.Sprintf("unknown status %q", a.Status))
		}
		if _, dup := appointmentIDs[a.ID]; dup && a.ID != "" {
			verr.Add(field+".id", fmt.Sprintf("duplicate id %q", a.ID))
		}
		appointmentIDs[a.ID] = struct{}{}
	}

	return verr.Err()
}
