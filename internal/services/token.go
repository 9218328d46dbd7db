package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/internal/models"
	"github.com/Ahmad-Raza810/blog-application/internal/repositories"
)

// RefreshTokenService manages the stored, rotating refresh tokens.
// Each user holds at most one live token: issuing a new one always
// replaces the previous row, so a stolen token stops working after a
// single refresh.
type RefreshTokenService interface {
	// Generate replaces the user's current refresh token with a fresh one.
	Generate(ctx context.Context, userID string) (*models.RefreshToken, error)
	// Verify resolves a token string to its live row. A missing row fails
	// with ErrRefreshTokenInvalid; an expired row is deleted on the spot
	// and fails with ErrRefreshTokenExpired.
	Verify(ctx context.Context, tokenString string) (*models.RefreshToken, error)
	// Delete revokes a token explicitly (logout, or the rotation step).
	Delete(ctx context.Context, token *models.RefreshToken) error
	// DeleteForUser revokes every token owned by the user.
	DeleteForUser(ctx context.Context, userID string) error
}

type refreshTokenService struct {
	tokenRepo repositories.RefreshTokenRepository
	ttl       time.Duration
	now       func() time.Time
}

// NewRefreshTokenService creates a new RefreshTokenService with the
// system clock. The clock is injectable for tests via WithClock.
func NewRefreshTokenService(tokenRepo repositories.RefreshTokenRepository, ttl time.Duration) RefreshTokenService {
	return &refreshTokenService{
		tokenRepo: tokenRepo,
		ttl:       ttl,
		now:       time.Now,
	}
}

// NewRefreshTokenServiceWithClock is like NewRefreshTokenService but
// with an explicit time source.
func NewRefreshTokenServiceWithClock(tokenRepo repositories.RefreshTokenRepository, ttl time.Duration, now func() time.Time) RefreshTokenService {
	return &refreshTokenService{tokenRepo: tokenRepo, ttl: ttl, now: now}
}

func (s *refreshTokenService) Generate(ctx context.Context, userID string) (*models.RefreshToken, error) {
	token := models.RefreshToken{
		ID:        uuid.New().String(),
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
		CreatedAt: s.now(),
	}

	if err := s.tokenRepo.Replace(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}
	return &token, nil
}

func (s *refreshTokenService) Verify(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	token, err := s.tokenRepo.FindByToken(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if token == nil {
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	if !token.ExpiresAt.After(s.now()) {
		// Expired rows are purged eagerly on access rather than by a
		// background sweep.
		if err := s.tokenRepo.DeleteByToken(ctx, tokenString); err != nil {
			return nil, fmt.Errorf("failed to purge expired refresh token: %w", err)
		}
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return token, nil
}

func (s *refreshTokenService) Delete(ctx context.Context, token *models.RefreshToken) error {
	if err := s.tokenRepo.DeleteByToken(ctx, token.Token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (s *refreshTokenService) DeleteForUser(ctx context.Context, userID string) error {
	if err := s.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user refresh tokens: %w", err)
	}
	return nil
}
