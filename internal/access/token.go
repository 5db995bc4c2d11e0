package access

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieTTL keeps the cached key around indefinitely for practical purposes.
const CookieTTL = 10 * 365 * 24 * time.Hour

// Claims carries the access key as the token subject. There is no expiry
// claim: a key stays valid for as long as it exists in the store.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs the access key for storage in the browser cookie.
func IssueToken(key, secret string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  key,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the signature and returns the cached access key.
func ParseToken(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}
