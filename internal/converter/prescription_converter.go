package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:              prescription.ID,
		Date:            formatDatePtr(prescription.Date),
		PatientID:       prescription.PatientID,
		ProfessionalID:  prescription.ProfessionalID,
		MedicationName:  prescription.MedicationName,
		Dosage:          prescription.Dosage,
		CertificateType: prescription.CertificateType,
		Status:          prescription.Status,
		CreatedAt:       prescription.CreatedAt,
	}

	if prescription.Patient.ID != 0 {
		response.PatientName = prescription.Patient.Name
	}
	if prescription.Professional.ID != 0 {
		response.ProfessionalName = prescription.Professional.Name
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to slice of PrescriptionResponse DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
