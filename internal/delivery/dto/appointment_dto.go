package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID      int    `json:"patient_id" validate:"required,min=1"`
	ProfessionalID int    `json:"professional_id" validate:"required,min=1"`
	Date           string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time           string `json:"time" validate:"required"` // Format: HH:MM
	Type           string `json:"type" validate:"omitempty"`
	Status         string `json:"status" validate:"omitempty,oneof=Aguardando Confirmado Cancelado Concluído"`
	Observations   string `json:"observations" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	PatientID      *int   `json:"patient_id" validate:"omitempty,min=1"`
	ProfessionalID *int   `json:"professional_id" validate:"omitempty,min=1"`
	Date           string `json:"date" validate:"omitempty"`
	Time           string `json:"time" validate:"omitempty"`
	Type           string `json:"type" validate:"omitempty"`
	Status         string `json:"status" validate:"omitempty,oneof=Aguardando Confirmado Cancelado Concluído"`
	Observations   *string `json:"observations" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               int       `json:"id"`
	PatientID        int       `json:"patient_id"`
	PatientName      string    `json:"patient_name,omitempty"`
	ProfessionalID   int       `json:"professional_id"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Type             string    `json:"type,omitempty"`
	Status           string    `json:"status"`
	AlarmSent        bool      `json:"alarm_sent"`
	Observations     string    `json:"observations,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
