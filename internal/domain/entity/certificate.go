package entity

import "time"

// Certificate types
const (
	CertificateTypeMedical    = "Médico"
	CertificateTypeAttendance = "Comparecimento"
)

// Certificate represents a medical or attendance certificate.
type Certificate struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Date           *time.Time `gorm:"type:date" json:"date,omitempty"`
	PatientID      int        `gorm:"not null;index" json:"patient_id"`
	ProfessionalID int        `gorm:"not null;index" json:"professional_id"`
	Type           string     `gorm:"type:varchar(50);not null" json:"type"`
	DurationDays   *int       `json:"duration_days,omitempty"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}
