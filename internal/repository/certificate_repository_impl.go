package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type certificateRepository struct{}

func NewCertificateRepository() domainRepo.CertificateRepository {
	return &certificateRepository{}
}

func (r *certificateRepository) Create(db *gorm.DB, certificate *entity.Certificate) error {
	return db.Create(certificate).Error
}

func (r *certificateRepository) FindByID(db *gorm.DB, id int) (*entity.Certificate, error) {
	var certificate entity.Certificate
	err := db.Preload("Patient").Preload("Professional").Where("id = ?", id).First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &certificate, nil
}

func (r *certificateRepository) FindAll(db *gorm.DB) ([]entity.Certificate, error) {
	var certificates []entity.Certificate
	err := db.Preload("Patient").Preload("Professional").Order("date DESC").Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *certificateRepository) Update(db *gorm.DB, certificate *entity.Certificate) error {
	return db.Omit("Patient", "Professional").Save(certificate).Error
}

func (r *certificateRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Certificate{}, id).Error
}
