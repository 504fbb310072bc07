// Package auth issues and verifies the signed identity tokens the ordering
// front end and the admin CLI present to the HTTP API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"florabot/internal/models"
)

// Claims carries the submitter identity inside a JWT.
type Claims struct {
	jwt.RegisteredClaims
	TGID     int64  `json:"tgId"`
	Username string `json:"tgUsername,omitempty"`
	Name     string `json:"tgName,omitempty"`
}

// Token signs and verifies identity tokens with a shared HMAC key.
type Token struct {
	key        []byte
	expiration time.Duration
}

// NewToken creates new Token instance.
func NewToken(key []byte, expiration time.Duration) *Token {
	return &Token{key: key, expiration: expiration}
}

// Create builds a signed token for the given identity.
func (t *Token) Create(identity models.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiration)),
		},
		TGID:     identity.TGID,
		Username: identity.Username,
		Name:     identity.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token string and returns the identity payload.
// Any parse, signature or expiry problem maps to models.ErrInvalidToken.
func (t *Token) Verify(tokenString string) (*models.TokenPayload, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil {
		return nil, errors.Join(models.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, models.ErrInvalidToken
	}

	return &models.TokenPayload{
		Identity: models.Identity{
			TGID:     claims.TGID,
			Username: claims.Username,
			Name:     claims.Name,
		},
	}, nil
}
