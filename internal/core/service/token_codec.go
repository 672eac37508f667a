package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saintreact/inventory-api/internal/core/domain"
)

// DefaultTokenTTL is the fixed bearer-token lifetime.
const DefaultTokenTTL = time.Hour

// TokenCodec implements ports.TokenCodec with HS256-signed JWTs carrying the
// subject in the standard `sub` claim.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

func (c *TokenCodec) Issue(subject string) (string, error) {
	if len(c.secret) == 0 {
		return "", domain.ErrMissingSecret
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// DecodeAndValidate parses the token and returns its subject. Signature
// integrity is checked before expiry, so a tampered token is always rejected
// as invalid even when its exp claim is also in the past.
func (c *TokenCodec) DecodeAndValidate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", domain.ErrTokenInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", domain.ErrTokenExpired
	case err != nil:
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
