package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to ProfessionalResponse DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:                   professional.ID,
		Name:                 professional.Name,
		Email:                professional.Email,
		Photo:                professional.Photo,
		Role:                 professional.Role,
		ProfessionalRegister: professional.ProfessionalRegister,
		Specialty:            professional.Specialty,
		Phone:                professional.Phone,
		Status:               professional.Status,
		CreatedAt:            professional.CreatedAt,
	}
}

// ProfessionalsToResponses converts a slice of Professional entities to slice of ProfessionalResponse DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i, professional := range professionals {
		resp := ProfessionalToResponse(&professional)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
