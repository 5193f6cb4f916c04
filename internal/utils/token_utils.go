package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
)

// TrainerClaims carries the trainee identity inside the session token. The
// simulator has no passwords, so the token is the whole session: user id in
// the subject, display name and role as custom claims.
type TrainerClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for the logged-in trainee.
func GenerateJWT(user domain.User, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := TrainerClaims{
		Name: user.Name,
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a session token, validating the signature and
// the standard time claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*TrainerClaims, error) {
	claims := &TrainerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
