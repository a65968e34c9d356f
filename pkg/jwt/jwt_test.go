package jwt

import (
	"testing"
	"time"

	"clinic-backend/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService()

	token, tokenID, err := service.GenerateAccessToken(42, "admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" || tokenID == "" {
		t.Fatal("expected non-empty token and token ID")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestGenerateRefreshTokenType(t *testing.T) {
	service := newTestService()

	token, _, err := service.GenerateRefreshToken(7, "patient")
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate refresh token: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, RefreshToken)
	}
	if claims.Role != "patient" {
		t.Errorf("Role = %q, want %q", claims.Role, "patient")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestService()
	other := NewJWTService(config.JWTConfig{
		Secret:        "another-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	token, _, err := service.GenerateAccessToken(1, "user")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := service.GenerateAccessToken(1, "user")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	service := newTestService()

	if _, err := service.ValidateToken("not-a-token"); err == nil {
		t.Error("expected validation to fail for malformed input")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	service := newTestService()

	_, first, err := service.GenerateAccessToken(1, "admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	_, second, err := service.GenerateAccessToken(1, "admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if first == second {
		t.Error("expected distinct token IDs for successive tokens")
	}
}
