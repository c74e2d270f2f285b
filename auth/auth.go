// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

// Manager issues and parses HS256 session tokens.
type Manager struct {
	secret []byte
}

// Claims carried by every session token.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue signs a token for the given user.
func (m *Manager) Issue(username string, admin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		IsAdmin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token and returns its claims.
func (m *Manager) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := parsed.Claims.(*Claims); ok && parsed.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// CheckCredentials compares a submitted username/password pair
// against the configured admin credentials in constant time.
func CheckCredentials(gotUser, gotPass, wantUser, wantPass string) bool {
	userOK := hmac.Equal([]byte(gotUser), []byte(wantUser))
	passOK := hmac.Equal([]byte(gotPass), []byte(wantPass))
	return userOK && passOK
}
