package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(db *gorm.DB, certificate *entity.Certificate) error
	FindByID(db *gorm.DB, id int) (*entity.Certificate, error)
	FindAll(db *gorm.DB) ([]entity.Certificate, error)
	Update(db *gorm.DB, certificate *entity.Certificate) error
	Delete(db *gorm.DB, id int) error
}
