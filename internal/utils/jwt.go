// internal/utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const RoleAdmin = "admin"

type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("change-me-in-production")

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateAdminJWT issues the token an admin session carries after the gate
// grants entry. Subject is the canonical platform id, or "shared-secret" for
// password entry.
func GenerateAdminJWT(subject string, ttlHours int) (string, error) {
	claims := SessionClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "medlavka-storefront",
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
