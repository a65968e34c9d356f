package dto

import "time"

// Request DTOs

type CreateProfessionalRequest struct {
	Name                 string `json:"name" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Photo                string `json:"photo" validate:"omitempty"`
	Role                 string `json:"role" validate:"required"`
	ProfessionalRegister string `json:"professional_register" validate:"omitempty"`
	Specialty            string `json:"specialty" validate:"omitempty"`
	Phone                string `json:"phone" validate:"omitempty,min=8,max=20"`
	Status               string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	// When set, a staff login account is created alongside the profile.
	Password string `json:"password" validate:"omitempty,min=6"`
}

type UpdateProfessionalRequest struct {
	Name                 string `json:"name" validate:"omitempty,min=2"`
	Email                string `json:"email" validate:"omitempty,email"`
	Photo                string `json:"photo" validate:"omitempty"`
	Role                 string `json:"role" validate:"omitempty"`
	ProfessionalRegister string `json:"professional_register" validate:"omitempty"`
	Specialty            string `json:"specialty" validate:"omitempty"`
	Phone                string `json:"phone" validate:"omitempty,min=8,max=20"`
	Status               string `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	Password             string `json:"password" validate:"omitempty,min=6"`
}

// Response DTOs

type ProfessionalResponse struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Photo                string    `json:"photo,omitempty"`
	Role                 string    `json:"role"`
	ProfessionalRegister string    `json:"professional_register,omitempty"`
	Specialty            string    `json:"specialty,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
