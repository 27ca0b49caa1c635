package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-blog-api/internal/domain"
)

// TokenTTL is the fixed token lifetime. Validity is purely cryptographic
// plus expiry; nothing is stored server-side and there is no revocation.
const TokenTTL = 24 * time.Hour

type Claims struct {
	UserID uint        `json:"userId"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies the signed identity tokens. Stateless.
type Codec struct {
	Secret []byte
	Issuer string
}

func (c *Codec) Issue(userID uint, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
}

// Verify parses and validates a token and returns the identity it
// carries. An unverifiable token is never partially trusted.
func (c *Codec) Verify(tokenStr string) (domain.Identity, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %v", token.Header["alg"])
		}
		return c.Secret, nil
	})
	if err != nil {
		return domain.Identity{}, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return domain.Identity{}, errors.New("invalid token claims")
	}
	return domain.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
