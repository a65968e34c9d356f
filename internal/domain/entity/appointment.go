package entity

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusWaiting   AppointmentStatus = "Aguardando"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmado"
	AppointmentStatusCancelled AppointmentStatus = "Cancelado"
	AppointmentStatusDone      AppointmentStatus = "Concluído"
)

// Appointment represents a scheduled session between a patient and a
// professional. AlarmSent is the reminder idempotency marker: it transitions
// false to true exactly once and is never reset.
type Appointment struct {
	ID             int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int               `gorm:"not null;index" json:"patient_id"`
	ProfessionalID int               `gorm:"not null;index" json:"professional_id"`
	Date           time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time           string            `gorm:"type:time;not null" json:"time"`
	Type           string            `gorm:"type:varchar(50)" json:"type,omitempty"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'Aguardando';index" json:"status"`
	AlarmSent      bool              `gorm:"not null;default:false;index" json:"alarm_sent"`
	Observations   string            `gorm:"type:text" json:"observations,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// StartsAt combines Date and Time into a single local wall-clock instant.
// Both "HH:MM" and "HH:MM:SS" time values are accepted.
func (a *Appointment) StartsAt() (time.Time, error) {
	t, err := time.Parse("15:04", a.Time)
	if err != nil {
		t, err = time.Parse("15:04:05", a.Time)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid appointment time %q: %w", a.Time, err)
		}
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}
