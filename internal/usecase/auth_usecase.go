package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"
	"clinic-backend/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountHasNoEmail  = errors.New("account has no email on file")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	GetCurrentUser(ctx context.Context, userID int, role string) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	IsTokenValid(ctx context.Context, userID int, tokenID string, tokenType jwt.TokenType) (bool, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	mailService  *service.MailService
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	mailService *service.MailService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		mailService:  mailService,
		auditService: auditService,
	}
}

// Login authenticates staff by email and patients by CPF. The issued token
// carries the role so the middleware can authorize routes without a DB hit.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	var (
		accountID int
		role      string
		hash      string
	)

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Login)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if user != nil {
		if user.IsActive != nil && !*user.IsActive {
			return nil, ErrAccountInactive
		}
		accountID = user.ID
		role = user.Role
		hash = user.Password
	} else {
		patient, err := u.patientRepo.FindByCPF(u.db.WithContext(ctx), req.Login)
		if err != nil {
			u.log.Warnf("Failed to find patient by CPF: %+v", err)
			return nil, err
		}
		if patient == nil || patient.Password == "" {
			return nil, ErrInvalidCredentials
		}
		if patient.Status == entity.PatientStatusInactive {
			return nil, ErrAccountInactive
		}
		accountID = patient.ID
		role = entity.RolePatient
		hash = patient.Password
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, accountID, role)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &accountID, entity.AuditActionUserLogin, entity.JSON{"role": role})
	return tokens, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, accountID int, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(accountID, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(accountID, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%d:%s", accountID, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%d:%s", accountID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		Role:         role,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accessPattern := fmt.Sprintf("access_token:*:%s", accessTokenID)
	refreshPattern := fmt.Sprintf("refresh_token:*:%s", refreshTokenID)

	for _, pattern := range []string{accessPattern, refreshPattern} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%d:%s", claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single-use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Role)
}

// ForgotPassword generates a temporary password for the account matching the
// login (staff email or patient CPF), stores its hash and emails it out.
func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	tempPassword, err := generatePassword(8)
	if err != nil {
		u.log.Warnf("Failed to generate temporary password: %+v", err)
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Login)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}

	if user != nil {
		user.Password = string(hashedPassword)
		if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
			u.log.Warnf("Failed to update user password: %+v", err)
			return err
		}
		go u.mailService.SendTemporaryPassword(user.Email, user.Email, tempPassword, false)
		u.auditService.Record(ctx, &user.ID, entity.AuditActionPasswordReset, entity.JSON{"role": user.Role})
		return nil
	}

	patient, err := u.patientRepo.FindByCPF(u.db.WithContext(ctx), req.Login)
	if err != nil {
		u.log.Warnf("Failed to find patient by CPF: %+v", err)
		return err
	}
	if patient == nil {
		return ErrUserNotFound
	}
	if patient.Email == "" {
		return ErrAccountHasNoEmail
	}

	patient.Password = string(hashedPassword)
	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to update patient password: %+v", err)
		return err
	}
	go u.mailService.SendTemporaryPassword(patient.Email, patient.CPF, tempPassword, true)
	u.auditService.Record(ctx, &patient.ID, entity.AuditActionPasswordReset, entity.JSON{"role": entity.RolePatient})
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int, role string) (*dto.UserResponse, error) {
	if role == entity.RolePatient {
		patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), userID)
		if err != nil {
			u.log.Warnf("Failed to find patient by ID: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrUserNotFound
		}
		return &dto.UserResponse{
			ID:        patient.ID,
			Email:     patient.Email,
			FullName:  patient.Name,
			Role:      entity.RolePatient,
			IsActive:  patient.Status == entity.PatientStatusActive,
			CreatedAt: patient.CreatedAt,
		}, nil
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) UpdateUser(ctx context.Context, userID int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// IsTokenValid checks the token allow-list in Redis.
func (u *authUsecase) IsTokenValid(ctx context.Context, userID int, tokenID string, tokenType jwt.TokenType) (bool, error) {
	var key string
	if tokenType == jwt.AccessToken {
		key = fmt.Sprintf("access_token:%d:%s", userID, tokenID)
	} else {
		key = fmt.Sprintf("refresh_token:%d:%s", userID, tokenID)
	}

	exists, err := u.redisClient.Exists(ctx, key).Result()
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}

	return exists > 0, nil
}

const passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePassword returns a random password drawn from an unambiguous
// alphanumeric charset.
func generatePassword(length int) (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(passwordCharset)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(passwordCharset[n.Int64()])
	}
	return sb.String(), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
