package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// PatientMessageToResponse converts a PatientMessage entity to PatientMessageResponse DTO
func PatientMessageToResponse(message *entity.PatientMessage) *dto.PatientMessageResponse {
	if message == nil {
		return nil
	}

	response := &dto.PatientMessageResponse{
		ID:             message.ID,
		PatientID:      message.PatientID,
		ProfessionalID: message.ProfessionalID,
		Message:        message.Message,
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt,
	}

	if message.Patient.ID != 0 {
		response.PatientName = message.Patient.Name
	}
	if message.Professional.ID != 0 {
		response.ProfessionalName = message.Professional.Name
	}

	return response
}

// PatientMessagesToResponses converts a slice of PatientMessage entities to slice of PatientMessageResponse DTOs
func PatientMessagesToResponses(messages []entity.PatientMessage) []dto.PatientMessageResponse {
	responses := make([]dto.PatientMessageResponse, len(messages))
	for i, message := range messages {
		resp := PatientMessageToResponse(&message)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
