package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type CertificateHandler struct {
	certificateUsecase usecase.CertificateUsecase
	validator          *validator.CustomValidator
}

func NewCertificateHandler(certificateUsecase usecase.CertificateUsecase, validator *validator.CustomValidator) *CertificateHandler {
	return &CertificateHandler{
		certificateUsecase: certificateUsecase,
		validator:          validator,
	}
}

func (h *CertificateHandler) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	certificate, err := h.certificateUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create certificate")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Certificate created successfully", certificate)
}

func (h *CertificateHandler) GetAllCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateUsecase.FindAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list certificates")
		return
	}

	response.Success(w, http.StatusOK, "Certificates retrieved successfully", certificates)
}

func (h *CertificateHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	certificate, err := h.certificateUsecase.FindByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound:
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to get certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate retrieved successfully", certificate)
}

func (h *CertificateHandler) UpdateCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	var req dto.UpdateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	certificate, err := h.certificateUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCertificateNotFound:
			response.NotFound(w, "Certificate not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate updated successfully", certificate)
}

func (h *CertificateHandler) DeleteCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid certificate ID", nil)
		return
	}

	if err := h.certificateUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrCertificateNotFound:
			response.NotFound(w, "Certificate not found")
		default:
			response.InternalServerError(w, "Failed to delete certificate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Certificate deleted successfully", nil)
}
