package usecase

import (
	"context"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClinicSettingsUsecase interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type clinicSettingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.ClinicSettingsRepository
	auditService service.AuditService
}

func NewClinicSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.ClinicSettingsRepository,
	auditService service.AuditService,
) ClinicSettingsUsecase {
	return &clinicSettingsUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		auditService: auditService,
	}
}

// Get returns the settings row, creating the default one on first access.
func (u *clinicSettingsUsecase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := u.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return converter.SettingsToResponse(settings), nil
}

func (u *clinicSettingsUsecase) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := u.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if req.ClinicName != "" {
		settings.ClinicName = req.ClinicName
	}
	if req.CNPJ != "" {
		settings.CNPJ = req.CNPJ
	}
	if req.Address != "" {
		settings.Address = req.Address
	}
	if req.Phone != "" {
		settings.Phone = req.Phone
	}
	if req.WorkingHoursWeek != "" {
		settings.WorkingHoursWeek = req.WorkingHoursWeek
	}
	if req.WorkingHoursSaturday != "" {
		settings.WorkingHoursSaturday = req.WorkingHoursSaturday
	}
	if req.SMTPServer != "" {
		settings.SMTPServer = req.SMTPServer
	}
	if req.SMTPPort != nil {
		settings.SMTPPort = *req.SMTPPort
	}
	if req.SMTPUsername != "" {
		settings.SMTPUsername = req.SMTPUsername
	}
	if req.SMTPPassword != "" {
		settings.SMTPPassword = req.SMTPPassword
	}
	if req.SMTPFromEmail != "" {
		settings.SMTPFromEmail = req.SMTPFromEmail
	}

	if err := u.settingsRepo.Update(u.db.WithContext(ctx), settings); err != nil {
		u.log.Warnf("Failed to update clinic settings: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, nil, entity.AuditActionSettingsUpdate, nil)
	return converter.SettingsToResponse(settings), nil
}

func (u *clinicSettingsUsecase) getOrCreate(ctx context.Context) (*entity.ClinicSettings, error) {
	settings, err := u.settingsRepo.Find(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load clinic settings: %+v", err)
		return nil, err
	}
	if settings == nil {
		settings = &entity.ClinicSettings{}
		if err := u.settingsRepo.Create(u.db.WithContext(ctx), settings); err != nil {
			u.log.Warnf("Failed to create default clinic settings: %+v", err)
			return nil, err
		}
	}
	return settings, nil
}
