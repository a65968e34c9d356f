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
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
)

const upcomingLimit = 10

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	FindAll(ctx context.Context, dateFilter string) (*dto.AppointmentListResponse, error)
	FindByID(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	FindToday(ctx context.Context) (*dto.AppointmentListResponse, error)
	FindUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
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

	appointment := &entity.Appointment{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		Time:           req.Time,
		Type:           req.Type,
		Status:         entity.AppointmentStatus(req.Status),
		Observations:   req.Observations,
	}
	if appointment.Status == "" {
		appointment.Status = entity.AppointmentStatusWaiting
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Professional = *professional
	u.auditService.Record(ctx, nil, entity.AuditActionAppointmentCreate, entity.JSON{"appointment_id": appointment.ID})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) FindAll(ctx context.Context, dateFilter string) (*dto.AppointmentListResponse, error) {
	var filter *time.Time
	if dateFilter != "" {
		date, err := parseDate(dateFilter)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter = &date
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) FindByID(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) FindToday(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), time.Now())
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) FindUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindUpcoming(u.db.WithContext(ctx), time.Now(), upcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Update applies a partial change. The alarm_sent marker is deliberately left
// untouched: once a reminder went out it is never repeated, even after a
// reschedule.
func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient by ID: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		appointment.PatientID = *req.PatientID
		appointment.Patient = *patient
	}
	if req.ProfessionalID != nil {
		professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), *req.ProfessionalID)
		if err != nil {
			u.log.Warnf("Failed to find professional by ID: %+v", err)
			return nil, err
		}
		if professional == nil {
			return nil, ErrProfessionalNotFound
		}
		appointment.ProfessionalID = *req.ProfessionalID
		appointment.Professional = *professional
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
	}
	if req.Time != "" {
		if _, err := time.Parse("15:04", req.Time); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.Time = req.Time
	}
	if req.Type != "" {
		appointment.Type = req.Type
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}
	if req.Observations != nil {
		appointment.Observations = *req.Observations
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, nil, entity.AuditActionAppointmentUpdate, entity.JSON{"appointment_id": appointment.ID})
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.auditService.Record(ctx, nil, entity.AuditActionAppointmentDelete, entity.JSON{"appointment_id": id})
	return nil
}
