package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		PatientID:      appointment.PatientID,
		ProfessionalID: appointment.ProfessionalID,
		Date:           formatDate(appointment.Date),
		Time:           appointment.Time,
		Type:           appointment.Type,
		Status:         string(appointment.Status),
		AlarmSent:      appointment.AlarmSent,
		Observations:   appointment.Observations,
		CreatedAt:      appointment.CreatedAt,
	}

	// Include related names if preloaded
	if appointment.Patient.ID != 0 {
		response.PatientName = appointment.Patient.Name
	}
	if appointment.Professional.ID != 0 {
		response.ProfessionalName = appointment.Professional.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
