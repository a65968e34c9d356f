package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicSettingsRepository interface {
	Find(db *gorm.DB) (*entity.ClinicSettings, error)
	Create(db *gorm.DB, settings *entity.ClinicSettings) error
	Update(db *gorm.DB, settings *entity.ClinicSettings) error
}
