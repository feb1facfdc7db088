package identity

import (
	"context"

	"github.com/draftly/backend/internal/domain/identity"
	"github.com/draftly/backend/internal/domain/shared"
	"github.com/draftly/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles registration, authentication and account management
type AuthService struct {
	users      identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new account with a fresh trial and returns a token pair
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if req.Company != "" {
		if err := user.SetCompany(req.Company); err != nil {
			return nil, err
		}
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_GENERATION_FAILED", "Failed to generate tokens")
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &AuthResponse{Tokens: tokens, User: NewUserInfo(user)}, nil
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Debug("login failed: user not found", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Debug("login failed: wrong password", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_GENERATION_FAILED", "Failed to generate tokens")
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	return &AuthResponse{Tokens: tokens, User: NewUserInfo(user)}, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	tokens, err := s.jwtService.RefreshTokenPair(refreshToken)
	if err != nil {
		switch err {
		case auth.ErrExpiredToken:
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		case auth.ErrMaxRefreshExceeded:
			return nil, shared.NewDomainError("TOKEN_REFRESH_EXHAUSTED", "Please log in again")
		default:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
	}
	return tokens, nil
}

// GetCurrentUser returns the account behind a user id
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	info := NewUserInfo(user)
	return &info, nil
}

// ChangePassword changes the password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return shared.ErrNotFound
	}

	if err := user.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to change password")
	}

	s.logger.Info("password changed", zap.String("user_id", userID.String()))
	return nil
}

// UpdateCompany sets the company shown on generated documents
func (s *AuthService) UpdateCompany(ctx context.Context, userID uuid.UUID, company string) (*UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := user.SetCompany(company); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	info := NewUserInfo(user)
	return &info, nil
}

// Subscribe moves the user onto a paid plan
func (s *AuthService) Subscribe(ctx context.Context, userID uuid.UUID, req SubscribeRequest) (*UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := user.Activate(identity.SubscriptionPlan(req.Plan)); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("failed to update subscription", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update subscription")
	}

	s.logger.Info("subscription activated",
		zap.String("user_id", userID.String()),
		zap.String("plan", req.Plan))

	info := NewUserInfo(user)
	return &info, nil
}

// CancelSubscription ends the user's subscription
func (s *AuthService) CancelSubscription(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if err := user.Cancel(); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("failed to update subscription", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update subscription")
	}

	s.logger.Info("subscription canceled", zap.String("user_id", userID.String()))

	info := NewUserInfo(user)
	return &info, nil
}
