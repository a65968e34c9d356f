package dto

import "time"

// Request DTOs

// PatientContactRequest is the patient portal's message submission. The
// patient authenticates inline with CPF and password.
type PatientContactRequest struct {
	CPF      string `json:"cpf" validate:"required,min=11,max=14"`
	Password string `json:"password" validate:"required"`
	Message  string `json:"message" validate:"required,min=1"`
}

// Response DTOs

type PatientMessageResponse struct {
	ID               int       `json:"id"`
	PatientID        int       `json:"patient_id"`
	PatientName      string    `json:"patient_name,omitempty"`
	ProfessionalID   int       `json:"professional_id"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}

type PatientMessageListResponse struct {
	Messages []PatientMessageResponse `json:"messages"`
	Total    int                      `json:"total"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
