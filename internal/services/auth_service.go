package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"netflix-backend/internal/apperrors"
	"netflix-backend/internal/models"
	"netflix-backend/internal/repository"
	"netflix-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgNotAuthenticated   = "Not authenticated"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*models.AuthResult, error)
	Logout(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context, userID string) (*models.UserProfile, error)
	ParseToken(token string) (*Claims, error)
	Authenticate(ctx context.Context, token string) (*Claims, error)
}

type authService struct {
	repo      repository.AccountRepository
	tokens    TokenService
	validator *validation.Validator
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAuthService(repo repository.AccountRepository, tokens TokenService, v *validation.Validator, logger *logrus.Logger) AuthService {
	return &authService{
		repo:      repo,
		tokens:    tokens,
		validator: v,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = repository.NormalizeEmail(input.Email)
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperrors.Validation("Validation failed: password must not exceed 72 bytes", map[string]string{"password": "must not exceed 72 bytes"})
		}
		return nil, apperrors.Internal("failed to hash password", err)
	}

	now := s.now()
	account := &models.Account{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return nil, apperrors.AlreadyExists(msgUserExists)
		}
		return nil, apperrors.Internal("failed to create account", err)
	}

	s.logger.WithFields(logrus.Fields{"userId": account.ID, "email": account.Email}).Info("Account registered")

	return s.startSession(ctx, account)
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.AuthResult, error) {
	input.Email = repository.NormalizeEmail(input.Email)
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	account, err := s.repo.FindAccountByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, apperrors.InvalidCredentials(msgInvalidCredentials)
		}
		return nil, apperrors.Internal("failed to load account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		s.logger.WithField("email", input.Email).Warn("Login rejected")
		return nil, apperrors.InvalidCredentials(msgInvalidCredentials)
	}

	return s.startSession(ctx, account)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.DeleteSession(ctx, userID); err != nil {
		return apperrors.Internal("failed to end session", err)
	}
	s.logger.WithField("userId", userID).Info("Session ended")
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	if err := s.activeSession(ctx, userID); err != nil {
		return nil, err
	}

	account, err := s.repo.FindAccountByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, apperrors.Unauthorized(msgNotAuthenticated)
		}
		return nil, apperrors.Internal("failed to load account", err)
	}

	profile := account.Profile()
	return &profile, nil
}

func (s *authService) ParseToken(token string) (*Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}

// Authenticate accepts a token only while its user still has an active
// session, so tokens issued before a logout are rejected.
func (s *authService) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.ParseToken(token)
	if err != nil {
		return nil, err
	}
	if err := s.activeSession(ctx, claims.UserID); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *authService) activeSession(ctx context.Context, userID string) error {
	session, err := s.repo.FindSession(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return apperrors.Unauthorized(msgNotAuthenticated)
		}
		return apperrors.Internal("failed to load session", err)
	}
	if !session.Active(s.now()) {
		return apperrors.Unauthorized(msgNotAuthenticated)
	}
	return nil
}

func (s *authService) startSession(ctx context.Context, account *models.Account) (*models.AuthResult, error) {
	now := s.now()
	token, exp, err := s.tokens.Sign(account, now)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}

	session := &models.Session{
		UserID:        account.ID,
		Authenticated: true,
		IssuedAt:      now,
		ExpiresAt:     exp,
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, apperrors.Internal("failed to save session", fmt.Errorf("user %s: %w", account.ID, err))
	}

	return &models.AuthResult{
		User:      account.Profile(),
		Token:     token,
		ExpiresAt: exp,
	}, nil
}
