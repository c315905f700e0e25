// internal/app/system/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "helpme-api"

// ErrInvalidToken is returned for tokens that fail verification for any
// reason (bad signature, expired, malformed).
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the JWT claims carried by an access token. The field set
// matches what clients decode to render the signed-in user.
type Claims struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Role       string `json:"role"`
	ProfileImg string `json:"profile_img,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access tokens with a process-wide HMAC
// secret loaded once at startup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager. The secret must be non-empty;
// ttl is the access-token lifetime (30 minutes in the original deployment).
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a fresh token for the given principal.
func (m *TokenManager) Issue(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     p.ID,
		Name:       p.Name,
		StudentID:  p.StudentID,
		Role:       p.Role,
		ProfileImg: p.ProfileImg,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   p.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the principal it carries.
func (m *TokenManager) Verify(tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	return Principal{
		ID:         claims.UserID,
		Name:       claims.Name,
		StudentID:  claims.StudentID,
		Role:       claims.Role,
		ProfileImg: claims.ProfileImg,
	}, nil
}

// ExtractToken pulls the raw token out of an Authorization header value.
// Expected format: "Bearer <token>".
func ExtractToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return "", errors.New("invalid authorization header format")
	}
	return authHeader[7:], nil
}
