package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:            patient.ID,
		Name:          patient.Name,
		CPF:           patient.CPF,
		BirthDate:     formatDatePtr(patient.BirthDate),
		Gender:        patient.Gender,
		MaritalStatus: patient.MaritalStatus,
		Profession:    patient.Profession,

		Phone:               patient.Phone,
		Email:               patient.Email,
		AddressCEP:          patient.AddressCEP,
		AddressStreet:       patient.AddressStreet,
		AddressNumber:       patient.AddressNumber,
		AddressComplement:   patient.AddressComplement,
		AddressNeighborhood: patient.AddressNeighborhood,
		AddressCity:         patient.AddressCity,
		AddressState:        patient.AddressState,

		AttendanceType:          patient.AttendanceType,
		InsurancePlan:           patient.InsurancePlan,
		InsuranceNumber:         patient.InsuranceNumber,
		InsuranceExpirationDate: formatDatePtr(patient.InsuranceExpirationDate),

		EmergencyContactName:     patient.EmergencyContactName,
		EmergencyContactPhone:    patient.EmergencyContactPhone,
		EmergencyContactRelation: patient.EmergencyContactRelation,
		ConsentTermsAccepted:     patient.ConsentTermsAccepted,

		ProfessionalID: patient.ProfessionalID,
		Status:         patient.Status,
		Observations:   patient.Observations,
		CareModality:   patient.CareModality,
		CreatedAt:      patient.CreatedAt,
	}

	if patient.Professional != nil {
		response.ProfessionalName = patient.Professional.Name
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
