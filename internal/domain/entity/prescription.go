package entity

import "time"

// Prescription represents a medication prescription issued by a professional.
type Prescription struct {
	ID              int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Date            *time.Time `gorm:"type:date" json:"date,omitempty"`
	PatientID       int        `gorm:"not null;index" json:"patient_id"`
	ProfessionalID  int        `gorm:"not null;index" json:"professional_id"`
	MedicationName  string     `gorm:"type:varchar(255);not null" json:"medication_name"`
	Dosage          string     `gorm:"type:varchar(255)" json:"dosage,omitempty"`
	CertificateType string     `gorm:"type:varchar(50);default:'Sem Atestado'" json:"certificate_type,omitempty"`
	Status          string     `gorm:"type:varchar(20);not null;default:'Ativo'" json:"status"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
