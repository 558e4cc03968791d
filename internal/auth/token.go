package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the absolute lifetime of an access token. There is no refresh
// mechanism; after expiry the admin logs in again.
const TokenTTL = 7 * 24 * time.Hour

// IssueToken signs an HS256 token carrying the admin's email claim and an
// absolute expiry of now + TokenTTL.
func IssueToken(secret, email string) (string, error) {
	return IssueTokenAt(secret, email, time.Now())
}

// IssueTokenAt is IssueToken with an explicit issue time (used by tests to
// mint already-expired tokens).
func IssueTokenAt(secret, email string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates signature and expiry and returns the email claim.
// Returns ErrTokenExpired past the embedded expiry, ErrInvalidToken for a bad
// signature, wrong signing method, or malformed payload.
func VerifyToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
