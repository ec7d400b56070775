package auth

import (
	"testing"
	"time"
)

func TestGenerateAndAuthenticate(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateAccessToken(42, "alice@example.com", secret, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	userID, email, err := Authenticate("Bearer "+token, secret)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", email)
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	secret := "test-secret"
	valid, err := GenerateAccessToken(42, "alice@example.com", secret, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	expired, err := GenerateAccessToken(42, "alice@example.com", secret, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{
			name:   "Empty header",
			header: "",
		},
		{
			name:   "Missing bearer prefix",
			header: valid,
		},
		{
			name:   "Garbage token",
			header: "Bearer not.a.token",
		},
		{
			name:   "Wrong secret",
			header: "Bearer " + valid + "x",
		},
		{
			name:   "Expired token",
			header: "Bearer " + expired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Authenticate(tt.header, secret); err == nil {
				t.Error("Authenticate() error = nil, want rejection")
			}
		})
	}
}
