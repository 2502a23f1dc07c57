package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validation outcomes. Expired is reported separately from every other
// failure so the guard can tell callers to re-authenticate rather than just
// rejecting the token as garbage.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims defines the session token claims structure.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless session tokens. It is a pure
// function of the signing key and the clock; restarts do not invalidate
// outstanding tokens.
type TokenService struct {
	key []byte
	ttl time.Duration
}

// NewTokenService creates a TokenService with a process-wide signing key and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{key: []byte(secret), ttl: ttl}
}

// Issue creates a signed token whose subject is the account id.
func (s *TokenService) Issue(accountID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Validate verifies a token and returns its subject. Signature integrity is
// checked before the expiry window, so a tampered token is always reported
// invalid even when its timestamps look fine.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
