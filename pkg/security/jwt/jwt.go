package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/resumerank/backend/pkg/auth"
)

// Generator issues HS256 tokens implementing auth.TokenGenerator.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims carries the registered claims plus the user's display name, so the
// frontend can greet the user without an extra lookup.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

func (g *Generator) Generate(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Name: user.Name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}
