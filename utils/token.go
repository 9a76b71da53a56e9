package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hotel-ops-backend/models"
)

const tokenTTL = 24 * time.Hour

var errInvalidToken = errors.New("invalid token")

// GenerateToken issues an HS256 token carrying the user id and role. The
// role claim is what the middleware turns into the request's Actor.
func GenerateToken(user *models.User, secret string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and extracts the actor.
func ParseToken(raw, secret string) (models.Actor, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return models.Actor{}, errInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return models.Actor{}, errInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return models.Actor{}, errInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || !models.IsValidRole(role) {
		return models.Actor{}, errInvalidToken
	}

	return models.Actor{UserID: uint(sub), Role: role}, nil
}
