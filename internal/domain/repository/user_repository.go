package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}
