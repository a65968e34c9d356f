package dto

import "time"

// Request DTOs

type CreateCertificateRequest struct {
	Date           string `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD
	PatientID      int    `json:"patient_id" validate:"required,min=1"`
	ProfessionalID int    `json:"professional_id" validate:"required,min=1"`
	Type           string `json:"type" validate:"required"`
	DurationDays   *int   `json:"duration_days" validate:"omitempty,min=0"`
	Description    string `json:"description" validate:"omitempty"`
}

type UpdateCertificateRequest struct {
	Date           string `json:"date" validate:"omitempty"`
	PatientID      *int   `json:"patient_id" validate:"omitempty,min=1"`
	ProfessionalID *int   `json:"professional_id" validate:"omitempty,min=1"`
	Type           string `json:"type" validate:"omitempty"`
	DurationDays   *int   `json:"duration_days" validate:"omitempty,min=0"`
	Description    string `json:"description" validate:"omitempty"`
}

// Response DTOs

type CertificateResponse struct {
	ID               int       `json:"id"`
	Date             string    `json:"date,omitempty"`
	PatientID        int       `json:"patient_id"`
	PatientName      string    `json:"patient_name,omitempty"`
	ProfessionalID   int       `json:"professional_id"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	Type             string    `json:"type"`
	DurationDays     *int      `json:"duration_days,omitempty"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	Total        int                   `json:"total"`
}
