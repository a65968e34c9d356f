package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicSettingsRepository struct{}

func NewClinicSettingsRepository() domainRepo.ClinicSettingsRepository {
	return &clinicSettingsRepository{}
}

func (r *clinicSettingsRepository) Find(db *gorm.DB) (*entity.ClinicSettings, error) {
	var settings entity.ClinicSettings
	err := db.Order("id ASC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *clinicSettingsRepository) Create(db *gorm.DB, settings *entity.ClinicSettings) error {
	return db.Create(settings).Error
}

func (r *clinicSettingsRepository) Update(db *gorm.DB, settings *entity.ClinicSettings) error {
	return db.Save(settings).Error
}
