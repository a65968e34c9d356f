package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound          = errors.New("message not found")
	ErrPatientHasNoProfessional = errors.New("patient has no linked professional")
)

// unreadCacheTTL bounds how stale the dashboard badge can get.
const unreadCacheTTL = 30 * time.Second

type PatientMessageUsecase interface {
	SubmitContact(ctx context.Context, req *dto.PatientContactRequest) (*dto.PatientMessageResponse, error)
	FindAll(ctx context.Context, professionalID *int) (*dto.PatientMessageListResponse, error)
	CountUnread(ctx context.Context, professionalID *int) (*dto.UnreadCountResponse, error)
	MarkRead(ctx context.Context, id int) error
}

type patientMessageUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	messageRepo  repository.PatientMessageRepository
	patientRepo  repository.PatientRepository
	profRepo     repository.ProfessionalRepository
	redisClient  *redis.Client
	mailService  *service.MailService
	auditService service.AuditService
}

func NewPatientMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	messageRepo repository.PatientMessageRepository,
	patientRepo repository.PatientRepository,
	profRepo repository.ProfessionalRepository,
	redisClient *redis.Client,
	mailService *service.MailService,
	auditService service.AuditService,
) PatientMessageUsecase {
	return &patientMessageUsecase{
		db:           db,
		log:          log,
		messageRepo:  messageRepo,
		patientRepo:  patientRepo,
		profRepo:     profRepo,
		redisClient:  redisClient,
		mailService:  mailService,
		auditService: auditService,
	}
}

// SubmitContact is the patient portal's message drop. The patient proves their
// identity inline (CPF + password); the message lands in the inbox of the
// professional they are linked to and a notification email goes out.
func (u *patientMessageUsecase) SubmitContact(ctx context.Context, req *dto.PatientContactRequest) (*dto.PatientMessageResponse, error) {
	patient, err := u.patientRepo.FindByCPF(u.db.WithContext(ctx), req.CPF)
	if err != nil {
		u.log.Warnf("Failed to find patient by CPF: %+v", err)
		return nil, err
	}
	if patient == nil || patient.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if patient.ProfessionalID == nil {
		return nil, ErrPatientHasNoProfessional
	}

	professional, err := u.profRepo.FindByID(u.db.WithContext(ctx), *patient.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional by ID: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrPatientHasNoProfessional
	}

	message := &entity.PatientMessage{
		PatientID:      patient.ID,
		ProfessionalID: professional.ID,
		Message:        req.Message,
	}
	if err := u.messageRepo.Create(u.db.WithContext(ctx), message); err != nil {
		u.log.Warnf("Failed to create patient message: %+v", err)
		return nil, err
	}

	u.invalidateUnreadCache(ctx, professional.ID)
	if professional.Email != "" {
		go u.mailService.SendPatientMessageNotification(professional.Email, professional.Name, patient.Name)
	}
	u.auditService.Record(ctx, &patient.ID, entity.AuditActionMessageReceived, entity.JSON{
		"message_id":      message.ID,
		"professional_id": professional.ID,
	})

	message.Patient = *patient
	message.Professional = *professional
	return converter.PatientMessageToResponse(message), nil
}

func (u *patientMessageUsecase) FindAll(ctx context.Context, professionalID *int) (*dto.PatientMessageListResponse, error) {
	messages, err := u.messageRepo.FindAll(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to list patient messages: %+v", err)
		return nil, err
	}

	return &dto.PatientMessageListResponse{
		Messages: converter.PatientMessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}

// CountUnread serves the inbox badge. The count is cached in Redis for a short
// TTL; writers invalidate it.
func (u *patientMessageUsecase) CountUnread(ctx context.Context, professionalID *int) (*dto.UnreadCountResponse, error) {
	cacheKey := unreadCacheKey(professionalID)

	cached, err := u.redisClient.Get(ctx, cacheKey).Result()
	if err == nil {
		if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return &dto.UnreadCountResponse{Unread: count}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		u.log.Warnf("Failed to read unread cache: %+v", err)
	}

	count, err := u.messageRepo.CountUnread(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to count unread messages: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, cacheKey, strconv.FormatInt(count, 10), unreadCacheTTL).Err(); err != nil {
		u.log.Warnf("Failed to cache unread count: %+v", err)
	}

	return &dto.UnreadCountResponse{Unread: count}, nil
}

func (u *patientMessageUsecase) MarkRead(ctx context.Context, id int) error {
	message, err := u.messageRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find message by ID: %+v", err)
		return err
	}
	if message == nil {
		return ErrMessageNotFound
	}

	affected, err := u.messageRepo.MarkRead(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to mark message read: %+v", err)
		return err
	}
	if affected > 0 {
		u.invalidateUnreadCache(ctx, message.ProfessionalID)
	}
	return nil
}

func (u *patientMessageUsecase) invalidateUnreadCache(ctx context.Context, professionalID int) {
	keys := []string{unreadCacheKey(nil), unreadCacheKey(&professionalID)}
	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to invalidate unread cache: %+v", err)
	}
}

func unreadCacheKey(professionalID *int) string {
	if professionalID == nil {
		return "unread_messages:all"
	}
	return fmt.Sprintf("unread_messages:%d", *professionalID)
}
