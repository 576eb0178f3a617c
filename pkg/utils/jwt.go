package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	sessionSecret string
	sessionExpiry time.Duration
)

// InitJWT initializes the session token secret and lifetime
func InitJWT(secret string, expiry time.Duration) {
	sessionSecret = secret
	sessionExpiry = expiry
}

// SessionClaims represents the JWT claims carried by the session cookie
type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for the given user
func GenerateSessionToken(userID uint) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionSecret))
}

// ValidateSessionToken validates and parses a session token
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(sessionSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GetSessionExpiry returns the configured session lifetime
func GetSessionExpiry() time.Duration {
	return sessionExpiry
}
