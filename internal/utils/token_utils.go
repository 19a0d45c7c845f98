package utils

import (
	"errors"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of a session access token. Subject is the employee id.
type SessionClaims struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Actor returns the employee identified by the claims.
func (c *SessionClaims) Actor() domain.Actor {
	return domain.Actor{ID: c.Subject, Name: c.Name, Role: c.Role}
}

// GenerateJWT signs a session token for the actor, valid from issuedAt for expiryDuration.
func GenerateJWT(actor domain.Actor, secret string, expiryDuration time.Duration, issuer string, issuedAt time.Time) (string, time.Time, error) {
	expiresAt := issuedAt.Add(expiryDuration)
	claims := SessionClaims{
		Name: actor.Name,
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a session token, validates its signature and standard claims,
// and checks that it names an employee with a known role.
func ParseAndValidateJWT(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, errors.New("token does not identify an employee")
	}
	return claims, nil
}
