package entity

import "time"

// PatientMessage is a message sent by a patient to their linked professional
// through the patient portal.
type PatientMessage struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int       `gorm:"not null;index" json:"patient_id"`
	ProfessionalID int       `gorm:"not null;index" json:"professional_id"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	IsRead         bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (PatientMessage) TableName() string {
	return "patient_messages"
}
