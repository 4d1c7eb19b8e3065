package unsub

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTTL keeps unsubscribe links valid long enough to outlive the
	// digest emails they are embedded in.
	DefaultTTL = 90 * 24 * time.Hour

	tokenIssuer  = "frostwatch-srv"
	tokenPurpose = "unsubscribe"
)

type claims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

type managerImpl struct {
	secretKey []byte
	ttl       time.Duration
}

// Generate signs a new unsubscribe token for the given email with HS256.
func (m *managerImpl) Generate(email string) (string, error) {
	now := time.Now()
	c := claims{
		Purpose: tokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the email it was issued for.
func (m *managerImpl) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	c, ok := token.Claims.(*claims)
	if !ok {
		return "", fmt.Errorf("invalid claims type")
	}
	if c.Purpose != tokenPurpose {
		return "", fmt.Errorf("unexpected token purpose %q", c.Purpose)
	}
	if c.Subject == "" {
		return "", fmt.Errorf("missing subject claim")
	}
	return c.Subject, nil
}
