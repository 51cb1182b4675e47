package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the fixed lifetime of every minted token.
const TokenValidity = time.Hour

// ErrMissingSecret is returned when no signing secret is configured.
var ErrMissingSecret = errors.New("missing token signing secret")

// Claims is the signed token payload. Email is set on user logins,
// Role on admin logins.
type Claims struct {
	UserID int    `json:"userId"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, userID int, email string) (string, error) {
	return sign(secret, Claims{UserID: userID, Email: email})
}

func GenerateAdminToken(secret string, userID int, role string) (string, error) {
	return sign(secret, Claims{UserID: userID, Role: role})
}

func sign(secret string, claims Claims) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
