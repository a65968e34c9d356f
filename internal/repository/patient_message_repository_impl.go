package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type patientMessageRepository struct{}

func NewPatientMessageRepository() domainRepo.PatientMessageRepository {
	return &patientMessageRepository{}
}

func (r *patientMessageRepository) Create(db *gorm.DB, message *entity.PatientMessage) error {
	return db.Create(message).Error
}

func (r *patientMessageRepository) FindByID(db *gorm.DB, id int) (*entity.PatientMessage, error) {
	var message entity.PatientMessage
	err := db.Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *patientMessageRepository) FindAll(db *gorm.DB, professionalID *int) ([]entity.PatientMessage, error) {
	var messages []entity.PatientMessage
	query := db.Preload("Patient").Preload("Professional").Order("created_at DESC")
	if professionalID != nil {
		query = query.Where("professional_id = ?", *professionalID)
	}
	err := query.Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *patientMessageRepository) CountUnread(db *gorm.DB, professionalID *int) (int64, error) {
	var count int64
	query := db.Model(&entity.PatientMessage{}).Where("is_read = ?", false)
	if professionalID != nil {
		query = query.Where("professional_id = ?", *professionalID)
	}
	err := query.Count(&count).Error
	return count, err
}

// MarkRead returns affected rows so callers can distinguish a missing message
// from an already-read one.
func (r *patientMessageRepository) MarkRead(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.PatientMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
