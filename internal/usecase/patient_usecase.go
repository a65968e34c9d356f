package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrCPFAlreadyExists  = errors.New("CPF already registered")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	FindAll(ctx context.Context, page, limit int) (*dto.PatientListResponse, error)
	FindByID(ctx context.Context, id int) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	mailService  *service.MailService
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	mailService *service.MailService,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		mailService:  mailService,
		auditService: auditService,
	}
}

// Create registers a patient. When the record carries both an email and a CPF
// a portal password is generated and mailed, so the patient can log in.
func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := parseDatePtr(req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	insuranceExpiration, err := parseDatePtr(req.InsuranceExpirationDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient := &entity.Patient{
		Name:          req.Name,
		CPF:           req.CPF,
		BirthDate:     birthDate,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		Profession:    req.Profession,

		Phone:               req.Phone,
		Email:               req.Email,
		AddressCEP:          req.AddressCEP,
		AddressStreet:       req.AddressStreet,
		AddressNumber:       req.AddressNumber,
		AddressComplement:   req.AddressComplement,
		AddressNeighborhood: req.AddressNeighborhood,
		AddressCity:         req.AddressCity,
		AddressState:        req.AddressState,

		AttendanceType:          req.AttendanceType,
		InsurancePlan:           req.InsurancePlan,
		InsuranceNumber:         req.InsuranceNumber,
		InsuranceExpirationDate: insuranceExpiration,

		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		EmergencyContactRelation: req.EmergencyContactRelation,
		ConsentTermsAccepted:     req.ConsentTermsAccepted,

		ProfessionalID: req.ProfessionalID,
		Status:         req.Status,
		Observations:   req.Observations,
		CareModality:   req.CareModality,
	}
	if patient.Status == "" {
		patient.Status = entity.PatientStatusActive
	}

	var portalPassword string
	if req.Email != "" && req.CPF != "" {
		portalPassword, err = generatePassword(8)
		if err != nil {
			u.log.Warnf("Failed to generate portal password: %+v", err)
			return nil, err
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(portalPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		patient.Password = string(hashedPassword)
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if portalPassword != "" {
		go u.mailService.SendPatientWelcome(patient.Email, patient.Name, patient.CPF, portalPassword)
	}
	u.auditService.Record(ctx, nil, entity.AuditActionPatientCreate, entity.JSON{"patient_id": patient.ID})

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) FindAll(ctx context.Context, page, limit int) (*dto.PatientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx), (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	total, err := u.patientRepo.Count(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, nil
}

func (u *patientUsecase) FindByID(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.CPF != "" {
		patient.CPF = req.CPF
	}
	if req.BirthDate != "" {
		birthDate, err := parseDatePtr(req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.BirthDate = birthDate
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.MaritalStatus != "" {
		patient.MaritalStatus = req.MaritalStatus
	}
	if req.Profession != "" {
		patient.Profession = req.Profession
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.AddressCEP != "" {
		patient.AddressCEP = req.AddressCEP
	}
	if req.AddressStreet != "" {
		patient.AddressStreet = req.AddressStreet
	}
	if req.AddressNumber != "" {
		patient.AddressNumber = req.AddressNumber
	}
	if req.AddressComplement != "" {
		patient.AddressComplement = req.AddressComplement
	}
	if req.AddressNeighborhood != "" {
		patient.AddressNeighborhood = req.AddressNeighborhood
	}
	if req.AddressCity != "" {
		patient.AddressCity = req.AddressCity
	}
	if req.AddressState != "" {
		patient.AddressState = req.AddressState
	}
	if req.AttendanceType != "" {
		patient.AttendanceType = req.AttendanceType
	}
	if req.InsurancePlan != "" {
		patient.InsurancePlan = req.InsurancePlan
	}
	if req.InsuranceNumber != "" {
		patient.InsuranceNumber = req.InsuranceNumber
	}
	if req.InsuranceExpirationDate != "" {
		insuranceExpiration, err := parseDatePtr(req.InsuranceExpirationDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.InsuranceExpirationDate = insuranceExpiration
	}
	if req.EmergencyContactName != "" {
		patient.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != "" {
		patient.EmergencyContactPhone = req.EmergencyContactPhone
	}
	if req.EmergencyContactRelation != "" {
		patient.EmergencyContactRelation = req.EmergencyContactRelation
	}
	if req.ConsentTermsAccepted != nil {
		patient.ConsentTermsAccepted = *req.ConsentTermsAccepted
	}
	if req.ProfessionalID != nil {
		patient.ProfessionalID = req.ProfessionalID
	}
	if req.Status != "" {
		patient.Status = req.Status
	}
	if req.Observations != "" {
		patient.Observations = req.Observations
	}
	if req.CareModality != "" {
		patient.CareModality = req.CareModality
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		patient.Password = string(hashedPassword)
	}

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, nil, entity.AuditActionPatientUpdate, entity.JSON{"patient_id": patient.ID})
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int) error {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	return nil
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
