package dto

import "time"

// Request DTOs

type UpdateSettingsRequest struct {
	ClinicName           string `json:"clinic_name" validate:"omitempty,min=2"`
	CNPJ                 string `json:"cnpj" validate:"omitempty"`
	Address              string `json:"address" validate:"omitempty"`
	Phone                string `json:"phone" validate:"omitempty"`
	WorkingHoursWeek     string `json:"working_hours_week" validate:"omitempty"`
	WorkingHoursSaturday string `json:"working_hours_saturday" validate:"omitempty"`
	SMTPServer           string `json:"smtp_server" validate:"omitempty"`
	SMTPPort             *int   `json:"smtp_port" validate:"omitempty,min=0,max=65535"`
	SMTPUsername         string `json:"smtp_username" validate:"omitempty"`
	SMTPPassword         string `json:"smtp_password" validate:"omitempty"`
	SMTPFromEmail        string `json:"smtp_from_email" validate:"omitempty,email"`
}

// Response DTOs

// SettingsResponse never echoes the SMTP password.
type SettingsResponse struct {
	ID                   int        `json:"id"`
	ClinicName           string     `json:"clinic_name"`
	CNPJ                 string     `json:"cnpj,omitempty"`
	Address              string     `json:"address,omitempty"`
	Phone                string     `json:"phone,omitempty"`
	WorkingHoursWeek     string     `json:"working_hours_week,omitempty"`
	WorkingHoursSaturday string     `json:"working_hours_saturday,omitempty"`
	SMTPServer           string     `json:"smtp_server,omitempty"`
	SMTPPort             int        `json:"smtp_port,omitempty"`
	SMTPUsername         string     `json:"smtp_username,omitempty"`
	SMTPFromEmail        string     `json:"smtp_from_email,omitempty"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}
