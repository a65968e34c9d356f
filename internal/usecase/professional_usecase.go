package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
)

type ProfessionalUsecase interface {
	Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	FindAll(ctx context.Context) (*dto.ProfessionalListResponse, error)
	FindByID(ctx context.Context, id int) (*dto.ProfessionalResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	Delete(ctx context.Context, id int) error
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	userRepo         repository.UserRepository
	mailService      *service.MailService
	auditService     service.AuditService
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	userRepo repository.UserRepository,
	mailService *service.MailService,
	auditService service.AuditService,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		userRepo:         userRepo,
		mailService:      mailService,
		auditService:     auditService,
	}
}

// Create registers the professional profile and, when a password was supplied,
// a staff login account in the same transaction.
func (u *professionalUsecase) Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional := &entity.Professional{
		Name:                 req.Name,
		Email:                req.Email,
		Photo:                req.Photo,
		Role:                 req.Role,
		ProfessionalRegister: req.ProfessionalRegister,
		Specialty:            req.Specialty,
		Phone:                req.Phone,
		Status:               req.Status,
	}
	if professional.Status == "" {
		professional.Status = entity.ProfessionalStatusActive
	}

	if err := u.professionalRepo.Create(tx, professional); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}

		user := &entity.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			FullName: req.Name,
			Role:     entity.RoleProfessional,
		}
		if err := u.userRepo.Create(tx, user); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to create user for professional: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if req.Password != "" {
		go u.mailService.SendProfessionalWelcome(professional.Email, professional.Name, req.Password)
	}
	u.auditService.Record(ctx, nil, entity.AuditActionProfessionalCreate, entity.JSON{"professional_id": professional.ID})

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) FindAll(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

func (u *professionalUsecase) FindByID(ctx context.Context, id int) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional by ID: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}
	return converter.ProfessionalToResponse(professional), nil
}

// Update applies the changed fields. An email change propagates to the linked
// login account so staff keep signing in with their current address.
func (u *professionalUsecase) Update(ctx context.Context, id int, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional by ID: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	previousEmail := professional.Email

	if req.Name != "" {
		professional.Name = req.Name
	}
	if req.Email != "" {
		professional.Email = req.Email
	}
	if req.Photo != "" {
		professional.Photo = req.Photo
	}
	if req.Role != "" {
		professional.Role = req.Role
	}
	if req.ProfessionalRegister != "" {
		professional.ProfessionalRegister = req.ProfessionalRegister
	}
	if req.Specialty != "" {
		professional.Specialty = req.Specialty
	}
	if req.Phone != "" {
		professional.Phone = req.Phone
	}
	if req.Status != "" {
		professional.Status = req.Status
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.professionalRepo.Update(tx, professional); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(tx, previousEmail)
	if err != nil {
		u.log.Warnf("Failed to find user for professional: %+v", err)
		return nil, err
	}
	if user != nil {
		changed := false
		if professional.Email != previousEmail {
			user.Email = professional.Email
			changed = true
		}
		if req.Name != "" {
			user.FullName = req.Name
			changed = true
		}
		if req.Password != "" {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				u.log.Warnf("Failed to hash password: %+v", err)
				return nil, err
			}
			user.Password = string(hashedPassword)
			changed = true
		}
		if changed {
			if err := u.userRepo.Update(tx, user); err != nil {
				if isDuplicateKeyError(err, "email") {
					return nil, ErrEmailAlreadyExists
				}
				u.log.Warnf("Failed to update user for professional: %+v", err)
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, nil, entity.AuditActionProfessionalUpdate, entity.JSON{"professional_id": professional.ID})
	return converter.ProfessionalToResponse(professional), nil
}

// Delete removes the profile and deactivates the linked login account.
func (u *professionalUsecase) Delete(ctx context.Context, id int) error {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional by ID: %+v", err)
		return err
	}
	if professional == nil {
		return ErrProfessionalNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.professionalRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete professional: %+v", err)
		return err
	}

	user, err := u.userRepo.FindByEmail(tx, professional.Email)
	if err != nil {
		u.log.Warnf("Failed to find user for professional: %+v", err)
		return err
	}
	if user != nil {
		inactive := false
		user.IsActive = &inactive
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to deactivate user for professional: %+v", err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(ctx, nil, entity.AuditActionProfessionalDelete, entity.JSON{"professional_id": id})
	return nil
}
