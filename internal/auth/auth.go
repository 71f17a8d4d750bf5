package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type ContextKey string

const ClaimsKey ContextKey = "claims"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// CanEdit reports whether the role may change tournament data.
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleEditor
}

var ErrInvalidPassword = errors.New("invalid password")

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) Issue(role Role) (string, error) {
	now := i.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Authenticator checks the shared admin password and hands out admin tokens.
type Authenticator struct {
	passwordHash []byte
	tokens       *TokenIssuer
}

func NewAuthenticator(passwordHash []byte, tokens *TokenIssuer) *Authenticator {
	return &Authenticator{passwordHash: passwordHash, tokens: tokens}
}

func HashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

func (a *Authenticator) Login(password string) (string, Role, error) {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", "", ErrInvalidPassword
	}
	token, err := a.tokens.Issue(RoleAdmin)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, RoleAdmin, nil
}

func (a *Authenticator) Tokens() *TokenIssuer {
	return a.tokens
}

func ClaimsFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
