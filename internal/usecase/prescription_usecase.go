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

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	FindAll(ctx context.Context) (*dto.PrescriptionListResponse, error)
	FindByID(ctx context.Context, id int) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id int) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
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

	prescription := &entity.Prescription{
		Date:            date,
		PatientID:       req.PatientID,
		ProfessionalID:  req.ProfessionalID,
		MedicationName:  req.MedicationName,
		Dosage:          req.Dosage,
		CertificateType: req.CertificateType,
		Status:          req.Status,
	}
	if prescription.Status == "" {
		prescription.Status = "Ativo"
	}

	if err := u.prescriptionRepo.Create(u.db.WithContext(ctx), prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	prescription.Patient = *patient
	prescription.Professional = *professional
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) FindAll(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) FindByID(ctx context.Context, id int) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if req.Date != "" {
		date, err := parseDatePtr(req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		prescription.Date = date
	}
	if req.PatientID != nil {
		prescription.PatientID = *req.PatientID
	}
	if req.ProfessionalID != nil {
		prescription.ProfessionalID = *req.ProfessionalID
	}
	if req.MedicationName != "" {
		prescription.MedicationName = req.MedicationName
	}
	if req.Dosage != "" {
		prescription.Dosage = req.Dosage
	}
	if req.CertificateType != "" {
		prescription.CertificateType = req.CertificateType
	}
	if req.Status != "" {
		prescription.Status = req.Status
	}

	if err := u.prescriptionRepo.Update(u.db.WithContext(ctx), prescription); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "professional") {
			return nil, ErrProfessionalNotFound
		}
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id int) error {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription by ID: %+v", err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	if err := u.prescriptionRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	return nil
}
