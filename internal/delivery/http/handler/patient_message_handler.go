package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type PatientMessageHandler struct {
	messageUsecase usecase.PatientMessageUsecase
	validator      *validator.CustomValidator
}

func NewPatientMessageHandler(messageUsecase usecase.PatientMessageUsecase, validator *validator.CustomValidator) *PatientMessageHandler {
	return &PatientMessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

// SubmitContact receives a message from the public patient portal
// @Summary Patient contact
// @Description Patient submits a message to their professional, authenticating with CPF and password
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body dto.PatientContactRequest true "Patient Contact Request"
// @Success 201 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /patient-contact [post]
func (h *PatientMessageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.SubmitContact(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid CPF or password")
		case usecase.ErrPatientHasNoProfessional:
			response.BadRequest(w, "Patient has no linked professional")
		default:
			response.InternalServerError(w, "Failed to submit message")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Message submitted successfully", message)
}

// GetAllMessages lists messages, optionally filtered by ?professional_id=
func (h *PatientMessageHandler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	professionalID := parseOptionalIntQuery(r, "professional_id")

	messages, err := h.messageUsecase.FindAll(r.Context(), professionalID)
	if err != nil {
		response.InternalServerError(w, "Failed to list messages")
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}

// GetUnreadCount returns the unread message counter for the inbox badge
func (h *PatientMessageHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	professionalID := parseOptionalIntQuery(r, "professional_id")

	count, err := h.messageUsecase.CountUnread(r.Context(), professionalID)
	if err != nil {
		response.InternalServerError(w, "Failed to count unread messages")
		return
	}

	response.Success(w, http.StatusOK, "Unread count retrieved successfully", count)
}

func (h *PatientMessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	if err := h.messageUsecase.MarkRead(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMessageNotFound:
			response.NotFound(w, "Message not found")
		default:
			response.InternalServerError(w, "Failed to mark message read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Message marked as read", nil)
}

func parseOptionalIntQuery(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}
