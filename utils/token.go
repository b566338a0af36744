package utils

import (
	"time"

	"timetrack/config"

	"aidanwoods.dev/go-paseto"
)

type TokenClaims struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// GenerateAccessToken issues the bearer token returned by both login
// endpoints. Role is "manager" or "store"; Name is the display name or
// store name.
func GenerateAccessToken(claims TokenClaims, cfg *config.Config) (string, error) {
	token := paseto.NewToken()
	token.SetIssuedAt(time.Now())
	token.SetNotBefore(time.Now())
	token.SetExpiration(time.Now().Add(time.Duration(cfg.AccessTokenTTL) * time.Minute))
	token.SetString("role", claims.Role)
	token.SetString("name", claims.Name)
	token.SetString("username", claims.Username)

	key, err := paseto.V4SymmetricKeyFromBytes([]byte(cfg.PasetoSymmetricKey))
	if err != nil {
		return "", err
	}
	return token.V4Encrypt(key, nil), nil
}

func ValidateToken(tokenString string, cfg *config.Config) (*paseto.Token, error) {
	key, err := paseto.V4SymmetricKeyFromBytes([]byte(cfg.PasetoSymmetricKey))
	if err != nil {
		return nil, err
	}

	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	token, err := parser.ParseV4Local(key, tokenString, nil)
	return token, err
}
