package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// SettingsToResponse converts a ClinicSettings entity to SettingsResponse DTO.
// The SMTP password is deliberately left out.
func SettingsToResponse(settings *entity.ClinicSettings) *dto.SettingsResponse {
	if settings == nil {
		return nil
	}

	return &dto.SettingsResponse{
		ID:                   settings.ID,
		ClinicName:           settings.ClinicName,
		CNPJ:                 settings.CNPJ,
		Address:              settings.Address,
		Phone:                settings.Phone,
		WorkingHoursWeek:     settings.WorkingHoursWeek,
		WorkingHoursSaturday: settings.WorkingHoursSaturday,
		SMTPServer:           settings.SMTPServer,
		SMTPPort:             settings.SMTPPort,
		SMTPUsername:         settings.SMTPUsername,
		SMTPFromEmail:        settings.SMTPFromEmail,
		UpdatedAt:            settings.UpdatedAt,
	}
}
