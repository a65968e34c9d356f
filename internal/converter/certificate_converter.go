package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// CertificateToResponse converts a Certificate entity to CertificateResponse DTO
func CertificateToResponse(certificate *entity.Certificate) *dto.CertificateResponse {
	if certificate == nil {
		return nil
	}

	response := &dto.CertificateResponse{
		ID:             certificate.ID,
		Date:           formatDatePtr(certificate.Date),
		PatientID:      certificate.PatientID,
		ProfessionalID: certificate.ProfessionalID,
		Type:           certificate.Type,
		DurationDays:   certificate.DurationDays,
		Description:    certificate.Description,
		CreatedAt:      certificate.CreatedAt,
	}

	if certificate.Patient.ID != 0 {
		response.PatientName = certificate.Patient.Name
	}
	if certificate.Professional.ID != 0 {
		response.ProfessionalName = certificate.Professional.Name
	}

	return response
}

// CertificatesToResponses converts a slice of Certificate entities to slice of CertificateResponse DTOs
func CertificatesToResponses(certificates []entity.Certificate) []dto.CertificateResponse {
	responses := make([]dto.CertificateResponse, len(certificates))
	for i, certificate := range certificates {
		resp := CertificateToResponse(&certificate)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
