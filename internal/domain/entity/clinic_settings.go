package entity

import "time"

// ClinicSettings holds clinic-wide configuration, kept as a single row.
// The SMTP fields override the environment configuration when filled in, so
// operators can change the mail account without redeploying.
type ClinicSettings struct {
	ID                   int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ClinicName           string     `gorm:"type:varchar(255);default:'Instituto de Psicologia'" json:"clinic_name"`
	CNPJ                 string     `gorm:"type:varchar(20)" json:"cnpj,omitempty"`
	Address              string     `gorm:"type:varchar(255)" json:"address,omitempty"`
	Phone                string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	WorkingHoursWeek     string     `gorm:"type:varchar(50)" json:"working_hours_week,omitempty"`
	WorkingHoursSaturday string     `gorm:"type:varchar(50)" json:"working_hours_saturday,omitempty"`
	SMTPServer           string     `gorm:"column:smtp_server;type:varchar(255)" json:"smtp_server,omitempty"`
	SMTPPort             int        `gorm:"column:smtp_port;default:0" json:"smtp_port,omitempty"`
	SMTPUsername         string     `gorm:"column:smtp_username;type:varchar(255)" json:"smtp_username,omitempty"`
	SMTPPassword         string     `gorm:"column:smtp_password;type:varchar(255)" json:"-"`
	SMTPFromEmail        string     `gorm:"column:smtp_from_email;type:varchar(255)" json:"smtp_from_email,omitempty"`
	UpdatedAt            *time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (ClinicSettings) TableName() string {
	return "clinic_settings"
}
