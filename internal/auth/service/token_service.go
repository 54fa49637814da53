package service

//go:generate mockgen -destination=../../mocks/mock_token_verifier.go -package=mocks github.com/ansoncht/Cat-Food-Helper/internal/auth/service TokenVerifier

import (
	"encoding/base64"
	"fmt"
	"time"

	autherror "github.com/ansoncht/Cat-Food-Helper/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// minKeyBytes is the smallest HMAC-SHA256 key the service will sign with.
const minKeyBytes = 32

type TokenVerifier interface {
	Issue(subject string) (string, error)
	Validate(token string) bool
	ExtractSubject(token string) (string, error)
}

// TokenService mints and verifies the stateless bearer tokens that gate the
// API. Tokens are never persisted; revocation is purely time-based.
type TokenService struct {
	Secret string // base64-encoded signing key
	Expiry time.Duration
	logger *zap.Logger
}

func NewTokenService(secret string, expiryMs int, logger *zap.Logger) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMs) * time.Millisecond,
		logger: logger,
	}
}

// Issue signs a token carrying the subject, issued-at and expiry claims.
// A malformed or too-short secret fails deterministically.
func (ts *TokenService) Issue(subject string) (string, error) {
	key, err := ts.signingKey()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate reports whether the token is well-formed, correctly signed and
// unexpired. Parse failures are logged, never propagated.
func (ts *TokenService) Validate(tokenString string) bool {
	if _, err := ts.parse(tokenString); err != nil {
		ts.logger.Error("invalid token", zap.Error(err))
		return false
	}

	return true
}

// ExtractSubject parses and verifies the token, returning its subject claim.
// Callers must treat an error as an unauthenticated request.
func (ts *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := ts.parse(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

func (ts *TokenService) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.signingKey()
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) signingKey() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(ts.Secret)
	if err != nil {
		return nil, fmt.Errorf("jwt secret is not valid base64: %w", err)
	}
	if len(key) < minKeyBytes {
		return nil, autherror.ErrWeakSigningKey
	}

	return key, nil
}
