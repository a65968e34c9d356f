package repository

import (
	"context"
	"time"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"gorm.io/gorm"
)

// reminderStore adapts the gorm repositories to the scheduler's store
// interface.
type reminderStore struct {
	db            *gorm.DB
	appointments  domainRepo.AppointmentRepository
	patients      domainRepo.PatientRepository
	professionals domainRepo.ProfessionalRepository
}

func NewReminderStore(
	db *gorm.DB,
	appointments domainRepo.AppointmentRepository,
	patients domainRepo.PatientRepository,
	professionals domainRepo.ProfessionalRepository,
) service.ReminderStore {
	return &reminderStore{
		db:            db,
		appointments:  appointments,
		patients:      patients,
		professionals: professionals,
	}
}

func (s *reminderStore) FindPendingReminders(ctx context.Context, day time.Time) ([]entity.Appointment, error) {
	return s.appointments.FindPendingReminders(s.db.WithContext(ctx), day)
}

func (s *reminderStore) FindPatient(ctx context.Context, id int) (*entity.Patient, error) {
	return s.patients.FindByID(s.db.WithContext(ctx), id)
}

func (s *reminderStore) FindProfessional(ctx context.Context, id int) (*entity.Professional, error) {
	return s.professionals.FindByID(s.db.WithContext(ctx), id)
}

func (s *reminderStore) MarkAlarmSent(ctx context.Context, ids []int) error {
	return s.appointments.MarkAlarmSent(s.db.WithContext(ctx), ids)
}
