package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinic/clinic/internal/platform/apperr"
)

// DefaultTokenTTL matches the lifetime of credentials issued at login.
const DefaultTokenTTL = time.Hour

// Claims is the signed payload of an access token.
type Claims struct {
	ID   uint `json:"id"`
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens with a shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue signs a credential for p that expires after the configured TTL.
func (m *TokenManager) Issue(p Principal) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		ID:   p.ID,
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(p.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates credential and returns the principal it names. An empty
// credential yields ErrUnauthenticated; anything else that fails to verify
// yields ErrInvalidCredential.
func (m *TokenManager) Verify(credential string) (*Principal, error) {
	if credential == "" {
		return nil, apperr.Unauthenticated("access denied")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.InvalidCredential("token expired")
		}
		return nil, apperr.InvalidCredential("invalid token")
	}
	if !token.Valid || claims.ID == 0 || !claims.Role.Valid() {
		return nil, apperr.InvalidCredential("invalid token")
	}

	return &Principal{ID: claims.ID, Role: claims.Role}, nil
}
