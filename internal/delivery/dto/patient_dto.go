package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	CPF           string `json:"cpf" validate:"omitempty,min=11,max=14"`
	BirthDate     string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender        string `json:"gender" validate:"omitempty"`
	MaritalStatus string `json:"marital_status" validate:"omitempty"`
	Profession    string `json:"profession" validate:"omitempty"`

	Phone               string `json:"phone" validate:"omitempty,min=8,max=20"`
	Email               string `json:"email" validate:"omitempty,email"`
	AddressCEP          string `json:"address_cep" validate:"omitempty"`
	AddressStreet       string `json:"address_street" validate:"omitempty"`
	AddressNumber       string `json:"address_number" validate:"omitempty"`
	AddressComplement   string `json:"address_complement" validate:"omitempty"`
	AddressNeighborhood string `json:"address_neighborhood" validate:"omitempty"`
	AddressCity         string `json:"address_city" validate:"omitempty"`
	AddressState        string `json:"address_state" validate:"omitempty,len=2"`

	AttendanceType          string `json:"attendance_type" validate:"omitempty"`
	InsurancePlan           string `json:"insurance_plan" validate:"omitempty"`
	InsuranceNumber         string `json:"insurance_number" validate:"omitempty"`
	InsuranceExpirationDate string `json:"insurance_expiration_date" validate:"omitempty"`

	EmergencyContactName     string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone    string `json:"emergency_contact_phone" validate:"omitempty"`
	EmergencyContactRelation string `json:"emergency_contact_relation" validate:"omitempty"`
	ConsentTermsAccepted     bool   `json:"consent_terms_accepted"`

	ProfessionalID *int   `json:"professional_id" validate:"omitempty,min=1"`
	Status         string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	Observations   string `json:"observations" validate:"omitempty"`
	CareModality   string `json:"care_modality" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Name          string `json:"name" validate:"omitempty,min=2"`
	CPF           string `json:"cpf" validate:"omitempty,min=11,max=14"`
	BirthDate     string `json:"birth_date" validate:"omitempty"`
	Gender        string `json:"gender" validate:"omitempty"`
	MaritalStatus string `json:"marital_status" validate:"omitempty"`
	Profession    string `json:"profession" validate:"omitempty"`

	Phone               string `json:"phone" validate:"omitempty,min=8,max=20"`
	Email               string `json:"email" validate:"omitempty,email"`
	AddressCEP          string `json:"address_cep" validate:"omitempty"`
	AddressStreet       string `json:"address_street" validate:"omitempty"`
	AddressNumber       string `json:"address_number" validate:"omitempty"`
	AddressComplement   string `json:"address_complement" validate:"omitempty"`
	AddressNeighborhood string `json:"address_neighborhood" validate:"omitempty"`
	AddressCity         string `json:"address_city" validate:"omitempty"`
	AddressState        string `json:"address_state" validate:"omitempty,len=2"`

	AttendanceType          string `json:"attendance_type" validate:"omitempty"`
	InsurancePlan           string `json:"insurance_plan" validate:"omitempty"`
	InsuranceNumber         string `json:"insurance_number" validate:"omitempty"`
	InsuranceExpirationDate string `json:"insurance_expiration_date" validate:"omitempty"`

	EmergencyContactName     string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone    string `json:"emergency_contact_phone" validate:"omitempty"`
	EmergencyContactRelation string `json:"emergency_contact_relation" validate:"omitempty"`
	ConsentTermsAccepted     *bool  `json:"consent_terms_accepted" validate:"omitempty"`

	ProfessionalID *int   `json:"professional_id" validate:"omitempty,min=1"`
	Status         string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	Observations   string `json:"observations" validate:"omitempty"`
	CareModality   string `json:"care_modality" validate:"omitempty"`
	Password       string `json:"password" validate:"omitempty,min=6"`
}

// Response DTOs

type PatientResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CPF           string `json:"cpf,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	Gender        string `json:"gender,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	Profession    string `json:"profession,omitempty"`

	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	AddressCEP          string `json:"address_cep,omitempty"`
	AddressStreet       string `json:"address_street,omitempty"`
	AddressNumber       string `json:"address_number,omitempty"`
	AddressComplement   string `json:"address_complement,omitempty"`
	AddressNeighborhood string `json:"address_neighborhood,omitempty"`
	AddressCity         string `json:"address_city,omitempty"`
	AddressState        string `json:"address_state,omitempty"`

	AttendanceType          string `json:"attendance_type,omitempty"`
	InsurancePlan           string `json:"insurance_plan,omitempty"`
	InsuranceNumber         string `json:"insurance_number,omitempty"`
	InsuranceExpirationDate string `json:"insurance_expiration_date,omitempty"`

	EmergencyContactName     string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation string `json:"emergency_contact_relation,omitempty"`
	ConsentTermsAccepted     bool   `json:"consent_terms_accepted"`

	ProfessionalID   *int      `json:"professional_id,omitempty"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	Status           string    `json:"status"`
	Observations     string    `json:"observations,omitempty"`
	CareModality     string    `json:"care_modality,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
