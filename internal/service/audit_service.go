package service

import (
	"context"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	// Record persists one audit entry. Failures are logged, never propagated:
	// auditing must not break the operation being audited.
	Record(ctx context.Context, userID *int, action string, metadata entity.JSON)
	RecordReminderOutcome(ctx context.Context, action string, appointmentID int)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, userID *int, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}

func (s *auditService) RecordReminderOutcome(ctx context.Context, action string, appointmentID int) {
	s.Record(ctx, nil, action, entity.JSON{
		"entity":    "appointment",
		"entity_id": appointmentID,
		"source":    "scheduler",
	})
}
