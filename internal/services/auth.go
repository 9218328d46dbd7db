package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/internal/auth"
	"github.com/Ahmad-Raza810/blog-application/internal/models"
	"github.com/Ahmad-Raza810/blog-application/internal/repositories"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// Logout status messages. Logout is idempotent: calling it without a
// session is reported as success, not an error.
const (
	LogoutAlreadyLoggedOut = "you are already logged out or not authenticated"
	LogoutSuccess          = "refresh token deleted, successfully logged out"
)

const defaultRole = "USER"

// AuthService orchestrates credential verification, access-token
// issuance and refresh-token rotation.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.UserResponse, error)
	// Login verifies credentials and returns a fresh token pair. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*auth.TokenResponse, error)
	// Refresh rotates the refresh token and mints a new access token.
	// Verification failures stop the flow before any mutation.
	Refresh(ctx context.Context, refreshTokenString string) (*auth.TokenResponse, error)
	// Logout revokes the caller's refresh tokens. An empty identity is a
	// soft no-op that never touches storage.
	Logout(ctx context.Context, userID string) (string, error)
	Profile(ctx context.Context, userID string) (*models.UserResponse, error)
}

type authService struct {
	userRepo      repositories.UserRepository
	refreshTokens RefreshTokenService
	tokens        *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, refreshTokens RefreshTokenService, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo:      userRepo,
		refreshTokens: refreshTokens,
		tokens:        tokens,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.UserResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         defaultRole,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

// Login authenticates a user and issues both tokens in one transaction
// of work: credential check, access token, refresh token.
func (s *authService) Login(ctx context.Context, email, password string) (*auth.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrBadCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logrus.Debugf("AuthService.Login: password mismatch for %s", email)
		return nil, apperrors.ErrBadCredentials
	}

	return s.issuePair(ctx, user)
}

// Refresh rotates the presented refresh token: verify, delete the old
// row, then mint a new access token and a new refresh token.
func (s *authService) Refresh(ctx context.Context, refreshTokenString string) (*auth.TokenResponse, error) {
	token, err := s.refreshTokens.Verify(ctx, refreshTokenString)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokens.Delete(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up token owner: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	return s.issuePair(ctx, user)
}

// Logout revokes the caller's refresh token rows. Unauthenticated
// callers get a success status without any storage access.
func (s *authService) Logout(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return LogoutAlreadyLoggedOut, nil
	}
	if err := s.refreshTokens.DeleteForUser(ctx, userID); err != nil {
		return "", fmt.Errorf("failed to log out: %w", err)
	}
	return LogoutSuccess, nil
}

// Profile returns the caller's own user record.
func (s *authService) Profile(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrResourceNotFound, userID)
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) issuePair(ctx context.Context, user *models.User) (*auth.TokenResponse, error) {
	accessToken, accessExpiry, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.refreshTokens.Generate(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &auth.TokenResponse{
		AccessToken:   accessToken,
		AccessExpiry:  accessExpiry,
		RefreshToken:  refreshToken.Token,
		RefreshExpiry: refreshToken.ExpiresAt,
	}, nil
}
