package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/config"
)

// CredentialTTL is the fixed check-in credential lifetime. Short enough
// that a screenshot is useless within a minute.
const CredentialTTL = 60 * time.Second

const credentialPurpose = "checkin"

type credentialClaims struct {
	MemberID uint   `json:"mid"`
	TenantID uint   `json:"tid"`
	Purpose  string `json:"purpose"`
	jwt.RegisteredClaims
}

// CredentialService signs and verifies short-lived check-in credentials.
// Credentials are stateless; nothing is persisted at mint time.
type CredentialService struct {
	secret []byte
}

// NewCredentialService creates a credential service from configuration.
func NewCredentialService(cfg *config.CredentialConfig) *CredentialService {
	return &CredentialService{secret: []byte(cfg.SigningSecret)}
}

// Issue mints a credential binding the member to their tenant.
func (s *CredentialService) Issue(memberID, tenantID uint) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(CredentialTTL)

	claims := credentialClaims{
		MemberID: memberID,
		TenantID: tenantID,
		Purpose:  credentialPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign credential: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks a presented credential. An expired credential with an
// authentic signature and correct purpose returns the extracted identity
// alongside checkin.ErrCredentialExpired so the caller can attribute the
// attempt to the right tenant. Every other failure returns
// checkin.ErrCredentialInvalid with no identity.
func (s *CredentialService) Verify(tokenString string) (*checkin.Credential, error) {
	claims := &credentialClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil && !errors.Is(err, jwt.ErrTokenExpired) {
		return nil, checkin.ErrCredentialInvalid
	}
	if claims.Purpose != credentialPurpose || claims.MemberID == 0 || claims.TenantID == 0 {
		return nil, checkin.ErrCredentialInvalid
	}

	cred := &checkin.Credential{
		MemberID: claims.MemberID,
		TenantID: claims.TenantID,
	}
	if err != nil {
		return cred, checkin.ErrCredentialExpired
	}
	return cred, nil
}
