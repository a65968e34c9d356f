package repository

import (
	"errors"
	"time"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Professional").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, dateFilter *time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient").Preload("Professional")
	if dateFilter != nil {
		query = query.Where("date = ?", dateFilter.Format(dateLayout))
	}
	err := query.Order("date ASC, time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").Preload("Professional").
		Where("date = ?", date.Format(dateLayout)).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcoming(db *gorm.DB, after time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").Preload("Professional").
		Where("date > ?", after.Format(dateLayout)).
		Order("date ASC, time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBetween(db *gorm.DB, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("date >= ? AND date <= ?", start.Format(dateLayout), end.Format(dateLayout)).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByDate(db *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("date = ?", date.Format(dateLayout)).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountBetween(db *gorm.DB, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("date >= ? AND date <= ?", start.Format(dateLayout), end.Format(dateLayout)).
		Count(&count).Error
	return count, err
}

// FindNextFrom returns the next appointment after the given day and time of
// day, first looking at the rest of the day, then at future dates.
func (r *appointmentRepository) FindNextFrom(db *gorm.DB, day time.Time, timeOfDay string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("date = ? AND time > ?", day.Format(dateLayout), timeOfDay).
		Order("time ASC").
		First(&appointment).Error
	if err == nil {
		return &appointment, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.Where("date > ?", day.Format(dateLayout)).
		Order("date ASC, time ASC").
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindPendingReminders returns the day's appointments that have not been
// reminded yet and are not cancelled. Cancellations that land between cycles
// drop out of this query, which is what suppresses their reminder.
func (r *appointmentRepository) FindPendingReminders(db *gorm.DB, day time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("date = ? AND alarm_sent = ? AND status != ?",
		day.Format(dateLayout), false, entity.AppointmentStatusCancelled).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// MarkAlarmSent flips the idempotency marker for the given appointments in a
// single transaction. The alarm_sent = false guard keeps the flag true-once
// even if a stale id slips in.
func (r *appointmentRepository) MarkAlarmSent(db *gorm.DB, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entity.Appointment{}).
			Where("id IN ? AND alarm_sent = ?", ids, false).
			Update("alarm_sent", true).Error
	})
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Professional").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Appointment{}, id).Error
}
