package entity

import "time"

// Professional represents a clinic professional (psychologist, physician).
// Email is the reminder recipient; a professional without one is treated as
// undeliverable by the reminder scheduler.
type Professional struct {
	ID                   int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Email                string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Photo                string    `gorm:"type:text" json:"photo,omitempty"`
	Role                 string    `gorm:"type:varchar(100);not null" json:"role"`
	ProfessionalRegister string    `gorm:"type:varchar(50)" json:"professional_register,omitempty"`
	Specialty            string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Phone                string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Status               string    `gorm:"type:varchar(20);not null;default:'Ativo'" json:"status"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments  []Appointment  `gorm:"foreignKey:ProfessionalID" json:"appointments,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:ProfessionalID" json:"prescriptions,omitempty"`
	Certificates  []Certificate  `gorm:"foreignKey:ProfessionalID" json:"certificates,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

// Professional status constants
const (
	ProfessionalStatusActive   = "Ativo"
	ProfessionalStatusInactive = "Inativo"
)
