package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/golang-jwt/jwt/v5"
)

// DevUserID is the ID of the single development account.
const DevUserID int64 = 1

// authService is the concrete implementation of AuthService.
// It knows exactly one account, built from configuration, and issues
// HMAC-SHA256 session JWTs for it.
type authService struct {
	devUser models.User

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		devUser: models.User{
			ID:    DevUserID,
			Name:  cfg.DevUserName,
			Email: cfg.DevUserEmail,
		},
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (a *authService) DevUser(_ context.Context) models.User {
	return a.devUser
}

func (a *authService) User(ctx context.Context, userID int64) (models.User, error) {
	if userID != a.devUser.ID {
		logger.FromContext(ctx).Error().Int64("user_id", userID).Msg("session for unknown user")
		return models.User{}, ErrUnknownUser
	}
	return a.devUser, nil
}

// CreateToken issues a signed session JWT for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// ParseToken validates tokenString. Expired tokens yield ErrTokenIsExpired;
// any other failure yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Err(err).Msg("token expired")
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		log.Debug().Err(err).Msg("invalid token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}
