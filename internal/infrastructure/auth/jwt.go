package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/config"
)

// Claims carries the authenticated session identity.
type Claims struct {
	UserID   uint   `json:"uid"`
	TenantID uint   `json:"tid"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies API session tokens.
type JWTService struct {
	secret     []byte
	expiration time.Duration
}

// NewJWTService creates a JWT service from configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	expiration := time.Duration(cfg.ExpirationHours) * time.Hour
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: expiration,
	}
}

// Generate creates a signed session token for the given identity.
func (s *JWTService) Generate(userID, tenantID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		TenantID: tenantID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
