package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientMessageRepository interface {
	Create(db *gorm.DB, message *entity.PatientMessage) error
	FindByID(db *gorm.DB, id int) (*entity.PatientMessage, error)
	FindAll(db *gorm.DB, professionalID *int) ([]entity.PatientMessage, error)
	CountUnread(db *gorm.DB, professionalID *int) (int64, error)
	MarkRead(db *gorm.DB, id int) (int64, error)
}
