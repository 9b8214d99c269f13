package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/civic-voice/internal/auth"
	"github.com/spec-kit/civic-voice/internal/config"
	"github.com/spec-kit/civic-voice/internal/domain"
	"github.com/spec-kit/civic-voice/internal/events"
	"github.com/spec-kit/civic-voice/internal/repository"
	apperrors "github.com/spec-kit/civic-voice/pkg/util"
)

// RegisterInput describes the registration payload.
type RegisterInput struct {
	Email        string
	AadharCardNo string
	PhoneNo      string
	Password     string
	DisplayName  string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDays),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new citizen account and signs them in.
//
// The identity-triple lookup is an early exit only; the unique indexes on the
// users table decide concurrent duplicates.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.users.GetByAnyIdentity(ctx, email, input.AadharCardNo, input.PhoneNo)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if existing != nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateIdentity("user with this email, Aadhar, or phone already exists")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = "User"
	}

	user := &domain.User{
		PublicID:     strconv.FormatInt(time.Now().UnixMilli(), 10),
		Email:        email,
		AadharCardNo: input.AadharCardNo,
		PhoneNo:      input.PhoneNo,
		DisplayName:  displayName,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return nil, "", time.Time{}, apperrors.NewDuplicateIdentity("user with this email, Aadhar, or phone already exists")
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.PublicID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			Actor:     events.Actor{UserID: user.ID, PublicID: user.PublicID},
			Timestamp: time.Now(),
			Payload:   events.UserRegisteredPayload{Email: user.Email, DisplayName: user.DisplayName},
		})
	}

	return user, token, exp, nil
}

// Login authenticates an active citizen by email and password. Unknown email
// and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.PublicID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
