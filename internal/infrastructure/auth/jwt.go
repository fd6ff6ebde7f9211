package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// JWT issues and verifies the two token families. Access and refresh tokens
// use separate secrets so one leaking does not compromise the other. The
// subject is always the holder's public 32-hex id.
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWT(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWT {
	return &JWT{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (j *JWT) sign(subject string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (j *JWT) verify(token string, secret []byte) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (j *JWT) IssueAccessToken(subject string) (string, error) {
	return j.sign(subject, j.accessSecret, j.accessTTL)
}

// IssueRefreshToken also returns the TTL so the caller can register the
// token in the revocation store with a matching expiry.
func (j *JWT) IssueRefreshToken(subject string) (string, time.Duration, error) {
	tok, err := j.sign(subject, j.refreshSecret, j.refreshTTL)
	return tok, j.refreshTTL, err
}

func (j *JWT) VerifyAccessToken(token string) (string, error) {
	return j.verify(token, j.accessSecret)
}

func (j *JWT) VerifyRefreshToken(token string) (string, error) {
	return j.verify(token, j.refreshSecret)
}
