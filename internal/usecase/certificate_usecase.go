package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateUsecase interface {
	Create(ctx context.Context, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error)
	FindAll(ctx context.Context) (*dto.CertificateListResponse, error)
	FindByID(ctx context.Context, id int) (*dto.CertificateResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateCertificateRequest) (*dto.CertificateResponse, error)
	Delete(ctx context.Context, id int) error
}

type certificateUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	certificateRepo  repository.CertificateRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
}

func NewCertificateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	certificateRepo repository.CertificateRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
) CertificateUsecase {
	return &certificateUsecase{
		db:               db,
		log:              log,
		certificateRepo:  certificateRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
	}
}

func (u *certificateUsecase) Create(ctx context.Context, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error) {
	date, err := parseDatePtr(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional by ID: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	certificate := &entity.Certificate{
		Date:           date,
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		Type:           req.Type,
		DurationDays:   req.DurationDays,
		Description:    req.Description,
	}

	if err := u.certificateRepo.Create(u.db.WithContext(ctx), certificate); err != nil {
		u.log.Warnf("Failed to create certificate: %+v", err)
		return nil, err
	}

	certificate.Patient = *patient
	certificate.Professional = *professional
	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) FindAll(ctx context.Context) (*dto.CertificateListResponse, error) {
	certificates, err := u.certificateRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list certificates: %+v", err)
		return nil, err
	}

	return &dto.CertificateListResponse{
		Certificates: converter.CertificatesToResponses(certificates),
		Total:        len(certificates),
	}, nil
}

func (u *certificateUsecase) FindByID(ctx context.Context, id int) (*dto.CertificateResponse, error) {
	certificate, err := u.certificateRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find certificate by ID: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}
	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) Update(ctx context.Context, id int, req *dto.UpdateCertificateRequest) (*dto.CertificateResponse, error) {
	certificate, err := u.certificateRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find certificate by ID: %+v", err)
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	if req.Date != "" {
		date, err := parseDatePtr(req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		certificate.Date = date
	}
	if req.PatientID != nil {
		certificate.PatientID = *req.PatientID
	}
	if req.ProfessionalID != nil {
		certificate.ProfessionalID = *req.ProfessionalID
	}
	if req.Type != "" {
		certificate.Type = req.Type
	}
	if req.DurationDays != nil {
		certificate.DurationDays = req.DurationDays
	}
	if req.Description != "" {
		certificate.Description = req.Description
	}

	if err := u.certificateRepo.Update(u.db.WithContext(ctx), certificate); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "professional") {
			return nil, ErrProfessionalNotFound
		}
		u.log.Warnf("Failed to update certificate: %+v", err)
		return nil, err
	}

	return converter.CertificateToResponse(certificate), nil
}

func (u *certificateUsecase) Delete(ctx context.Context, id int) error {
	certificate, err := u.certificateRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find certificate by ID: %+v", err)
		return err
	}
	if certificate == nil {
		return ErrCertificateNotFound
	}

	if err := u.certificateRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete certificate: %+v", err)
		return err
	}
	return nil
}
