package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired means the token was well-formed and correctly
	// signed but past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid means the token is malformed or its signature
	// does not check out.
	ErrTokenInvalid = errors.New("invalid token")
)

// Issuer signs and verifies the API's bearer tokens. Tokens are HS256
// JWTs carrying the user id as subject and an expiry claim.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer signing with the given server-side secret.
func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret, ttl: TokenTTL}
}

// IssueToken signs a token for a user id, expiring after the issuer's TTL.
func (i *Issuer) IssueToken(userID uuid.UUID) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   userID.String(),
		ExpiresAt: time.Now().Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// VerifyToken checks signature and expiry and returns the embedded
// user id. Fails with ErrTokenExpired or ErrTokenInvalid.
func (i *Issuer) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
