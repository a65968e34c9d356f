package repository

import (
	"time"

	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(db *gorm.DB, dateFilter *time.Time) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	FindUpcoming(db *gorm.DB, after time.Time, limit int) ([]entity.Appointment, error)
	FindBetween(db *gorm.DB, start, end time.Time) ([]entity.Appointment, error)
	CountByDate(db *gorm.DB, date time.Time) (int64, error)
	CountBetween(db *gorm.DB, start, end time.Time) (int64, error)
	FindNextFrom(db *gorm.DB, day time.Time, timeOfDay string) (*entity.Appointment, error)
	FindPendingReminders(db *gorm.DB, day time.Time) ([]entity.Appointment, error)
	MarkAlarmSent(db *gorm.DB, ids []int) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int) error
}
