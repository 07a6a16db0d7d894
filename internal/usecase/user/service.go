package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"facility-hub/internal/config"
	domainLocation "facility-hub/internal/domain/location"
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/logger"
	appErrors "facility-hub/pkg/errors"
	"facility-hub/pkg/utils"

	"go.uber.org/zap"
)

// Service implements user use cases: registration, login, token refresh and
// the superuser admin operations (list users, assign a user to a location).
type Service struct {
	userRepo         domainUser.Repository
	refreshTokenRepo domainUser.RefreshTokenRepository
	locationRepo     domainLocation.Repository
	config           *config.Config
}

// NewService creates a new user service
func NewService(
	userRepo domainUser.Repository,
	refreshTokenRepo domainUser.RefreshTokenRepository,
	locationRepo domainLocation.Repository,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		locationRepo:     locationRepo,
		config:           cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	email := utils.SanitizeEmail(req.Email)

	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, appErrors.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// New accounts are regular users with no location until a superuser
	// assigns one.
	user := &domainUser.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("event", "user_registered"),
	)

	return toAuthResponse(user, pair), nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	email := utils.SanitizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, appErrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn("Failed login attempt",
			zap.String("email", email),
			zap.String("event", "login_failed"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("event", "user_logged_in"),
	)

	return toAuthResponse(user, pair), nil
}

func (s *Service) Refresh(ctx context.Context, req *RefreshRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	stored, err := s.refreshTokenRepo.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}
	if stored.Revoked {
		return nil, appErrors.ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, appErrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	// Rotate: revoke the presented token before issuing a new pair.
	if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return toAuthResponse(user, pair), nil
}

// RevokeAll revokes every refresh token belonging to the user.
func (s *Service) RevokeAll(ctx context.Context, userID int64) error {
	return s.refreshTokenRepo.RevokeAllUserTokens(ctx, userID)
}

// GetUser loads a single user.
func (s *Service) GetUser(ctx context.Context, userID int64) (*domainUser.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers returns all users for the admin table.
func (s *Service) ListUsers(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}

	return out, nil
}

// AssignLocation anchors a user to a location. Both sides must exist.
func (s *Service) AssignLocation(ctx context.Context, req *AssignLocationRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return err
	}
	if _, err := s.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		return err
	}

	if err := s.userRepo.AssignLocation(ctx, req.UserID, req.LocationID); err != nil {
		return err
	}

	logger.Info("User assigned to location",
		zap.Int64("user_id", req.UserID),
		zap.Int64("location_id", req.LocationID),
		zap.String("event", "user_location_assigned"),
	)

	return nil
}

// tokenCleanupGrace is how long expired refresh tokens are kept before the
// cleanup job deletes them.
const tokenCleanupGrace = 24 * time.Hour

// StartTokenCleanupJob periodically deletes long-expired refresh tokens.
// It blocks until ctx is cancelled; run it on its own goroutine.
func (s *Service) StartTokenCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.refreshTokenRepo.DeleteExpired(ctx, tokenCleanupGrace); err != nil {
				logger.Error("Refresh token cleanup failed", zap.Error(err))
			}
		}
	}
}

func (s *Service) issueTokens(ctx context.Context, user *domainUser.User) (*utils.TokenPair, error) {
	pair, err := utils.GenerateTokenPair(
		user.ID,
		user.Email,
		user.IsSuperuser,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
		s.config.JWT.RefreshExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	refreshHours := s.config.JWT.RefreshExpiryHours
	if refreshHours <= 0 {
		refreshHours = 24 * 7
	}
	refreshToken := &domainUser.RefreshToken{
		UserID:    user.ID,
		Token:     pair.RefreshToken,
		ExpiresAt: time.Now().Add(time.Duration(refreshHours) * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return pair, nil
}
