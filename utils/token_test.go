package utils

import (
	"testing"

	"timetrack/config"
)

func testConfig() *config.Config {
	return &config.Config{
		PasetoSymmetricKey: "your-32-character-secret-key!!!!",
		AccessTokenTTL:     60,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	tokenString, err := GenerateAccessToken(TokenClaims{
		Role: "manager", Name: "Manager", Username: "manager",
	}, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	token, err := ValidateToken(tokenString, cfg)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	role, err := token.GetString("role")
	if err != nil || role != "manager" {
		t.Errorf("role claim = %q (%v)", role, err)
	}
	name, err := token.GetString("name")
	if err != nil || name != "Manager" {
		t.Errorf("name claim = %q (%v)", name, err)
	}
}

func TestTokenRejectsWrongKey(t *testing.T) {
	cfg := testConfig()
	tokenString, err := GenerateAccessToken(TokenClaims{Role: "manager"}, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := testConfig()
	other.PasetoSymmetricKey = "another-32-character-secret-key!"
	if _, err := ValidateToken(tokenString, other); err == nil {
		t.Error("token accepted with the wrong key")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("v4.local.garbage", testConfig()); err == nil {
		t.Error("garbage token accepted")
	}
}
