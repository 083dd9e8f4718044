package models

import (
	"strings"
	"testing"
	"time"
)

func TestUserSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UserSignupRequest
		wantErr string
	}{
		{"valid", UserSignupRequest{Username: "ada", Email: "ada@example.com", Password: "correct horse"}, ""},
		{"no username", UserSignupRequest{Email: "ada@example.com", Password: "correct horse"}, "username is required"},
		{"spaces", UserSignupRequest{Username: "ada l", Email: "ada@example.com", Password: "correct horse"}, "spaces"},
		{"bad email", UserSignupRequest{Username: "ada", Email: "ada.example.com", Password: "correct horse"}, "email"},
		{"short password", UserSignupRequest{Username: "ada", Email: "ada@example.com", Password: "short"}, "8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	user, err := NewUser(UserSignupRequest{Username: "ada", Email: "Ada@Example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email = %s, want lowercase", user.Email)
	}
	if user.Kind != Designer || !user.Approved {
		t.Errorf("kind/approved = %s/%v", user.Kind, user.Approved)
	}
	if user.HashedPassword == "correct horse" {
		t.Error("password stored in plain text")
	}
	if err := user.CheckPassword("correct horse"); err != nil {
		t.Errorf("CheckPassword(correct) = %v", err)
	}
	if err := user.CheckPassword("wrong horse"); err == nil {
		t.Error("CheckPassword(wrong) succeeded")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := User{UserID: "u-1", Email: "ada@example.com", Kind: Admin}
	token, err := NewClaims(user, "device-1", ScopeAuthentication, time.Now().Add(time.Minute)).Sign("secret")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ValidateJWTToken(token, "secret")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "u-1" || claims.DeviceFingerprint != "device-1" || claims.Scope != ScopeAuthentication {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenType != JWT.ACCESS_COOKIE_NAME {
		t.Errorf("token type = %s", claims.TokenType)
	}

	if _, err := ValidateJWTToken(token, "other-secret"); err == nil {
		t.Error("token validated with the wrong secret")
	}

	expired, _ := NewClaims(user, "device-1", ScopeRefresh, time.Now().Add(-time.Minute)).Sign("secret")
	if _, err := ValidateJWTToken(expired, "secret"); err == nil {
		t.Error("expired token validated")
	}
}
