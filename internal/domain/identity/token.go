package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL bounds how long a session token is accepted.
const DefaultTokenTTL = 12 * time.Hour

// Claims is the session token payload: the registered subject carries the
// user id, Role the access level.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Tokens issues and verifies HMAC-signed session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{secret: secret, ttl: ttl}
}

func (t *Tokens) Issue(role Role, subject string) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("identity: invalid role %q", role)
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Role: role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies the signature and expiry and returns the session claims.
func (t *Tokens) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("identity: invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("identity: invalid token")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("identity: token carries invalid role %q", claims.Role)
	}
	return claims, nil
}
