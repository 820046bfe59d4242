package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidToken is returned for tokens that are malformed, expired or signed
// with another key
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of the tokens handed to users
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 user tokens
type TokenIssuer struct {
	secret []byte
	expire time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns a TokenIssuer whose tokens live for expire
func NewTokenIssuer(secret string, expire time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), expire: expire, now: time.Now}
}

// Expire is how long issued tokens stay valid
func (t *TokenIssuer) Expire() time.Duration {
	return t.expire
}

// Sign returns a token identifying userID
func (t *TokenIssuer) Sign(userID primitive.ObjectID) (string, error) {
	now := t.now()
	claims := Claims{
		ID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expire)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns its claims
func (t *TokenIssuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
