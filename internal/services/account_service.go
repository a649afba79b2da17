package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundforge/platform/internal/db/repositories"
	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/models/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired reactivation token")

// AccountStore is the slice of user persistence the account lifecycle needs.
type AccountStore interface {
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	Deactivate(ctx context.Context, userID int64, reactivateToken string) error
	FindByReactivateToken(ctx context.Context, token string) (*entities.User, error)
	Reactivate(ctx context.Context, userID int64) error
}

// AccountService handles soft deactivation and token-based reactivation. The
// token is an HS256 JWT so an emailed link can be validated without a
// round-trip, then matched against the stored copy so it is single-use.
type AccountService struct {
	users     AccountStore
	secretKey []byte
	tokenTTL  time.Duration
}

func NewAccountService(users AccountStore, secretKey []byte, tokenTTL time.Duration) *AccountService {
	return &AccountService{
		users:     users,
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Deactivate soft-deletes the account and returns the reactivation token to
// embed in the goodbye email.
func (s *AccountService) Deactivate(ctx context.Context, userID int64) (string, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return "", err
	}

	token, err := s.signToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to sign reactivation token: %w", err)
	}

	if err := s.users.Deactivate(ctx, userID, token); err != nil {
		return "", err
	}

	logging.Info("user deactivated", "user_id", userID)
	return token, nil
}

// Reactivate validates the token, restores the account, and returns the user.
func (s *AccountService) Reactivate(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	// The stored copy makes the token single-use: once reactivated the
	// column is cleared and the same JWT stops matching anyone.
	user, err := s.users.FindByReactivateToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if err := s.users.Reactivate(ctx, user.ID); err != nil {
		return nil, err
	}

	user.DeactivatedAt = nil
	user.ReactivateToken = nil

	logging.Info("user reactivated", "user_id", user.ID)
	return user, nil
}

func (s *AccountService) signToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
