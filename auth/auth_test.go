// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue("admin", true)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned an empty token")
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Expected username 'admin', got %q", claims.Username)
	}
	if !claims.IsAdmin {
		t.Error("Expected admin claim")
	}

	// Expiry sits roughly TokenTTL in the future
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < TokenTTL-time.Minute || remaining > TokenTTL {
		t.Errorf("Unexpected token lifetime %v", remaining)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-one").Issue("admin", true)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := NewManager("secret-two").Parse(token); err == nil {
		t.Error("Expected a token signed with another secret to be rejected")
	}
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Parse(token); err == nil {
			t.Errorf("Expected Parse(%q) to fail", token)
		}
	}
}

func TestParse_RejectsUnsignedToken(t *testing.T) {
	m := NewManager("test-secret")

	// alg=none tokens must never validate
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "admin", IsAdmin: true})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("Failed to build unsigned token: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Error("Expected an unsigned token to be rejected")
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	m := NewManager("test-secret")

	claims := Claims{
		Username: "admin",
		IsAdmin:  true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Error("Expected an expired token to be rejected")
	}
}

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name               string
		gotUser, gotPass   string
		wantUser, wantPass string
		want               bool
	}{
		{"match", "admin", "pw", "admin", "pw", true},
		{"wrong user", "root", "pw", "admin", "pw", false},
		{"wrong password", "admin", "nope", "admin", "pw", false},
		{"both wrong", "root", "nope", "admin", "pw", false},
		{"empty submitted", "", "", "admin", "pw", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCredentials(tt.gotUser, tt.gotPass, tt.wantUser, tt.wantPass)
			if got != tt.want {
				t.Errorf("CheckCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}
