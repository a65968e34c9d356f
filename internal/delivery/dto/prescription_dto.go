package dto

import "time"

// Request DTOs

type CreatePrescriptionRequest struct {
	Date            string `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD
	PatientID       int    `json:"patient_id" validate:"required,min=1"`
	ProfessionalID  int    `json:"professional_id" validate:"required,min=1"`
	MedicationName  string `json:"medication_name" validate:"required"`
	Dosage          string `json:"dosage" validate:"omitempty"`
	CertificateType string `json:"certificate_type" validate:"omitempty"`
	Status          string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

type UpdatePrescriptionRequest struct {
	Date            string `json:"date" validate:"omitempty"`
	PatientID       *int   `json:"patient_id" validate:"omitempty,min=1"`
	ProfessionalID  *int   `json:"professional_id" validate:"omitempty,min=1"`
	MedicationName  string `json:"medication_name" validate:"omitempty"`
	Dosage          string `json:"dosage" validate:"omitempty"`
	CertificateType string `json:"certificate_type" validate:"omitempty"`
	Status          string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID               int       `json:"id"`
	Date             string    `json:"date,omitempty"`
	PatientID        int       `json:"patient_id"`
	PatientName      string    `json:"patient_name,omitempty"`
	ProfessionalID   int       `json:"professional_id"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	MedicationName   string    `json:"medication_name"`
	Dosage           string    `json:"dosage,omitempty"`
	CertificateType  string    `json:"certificate_type,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
