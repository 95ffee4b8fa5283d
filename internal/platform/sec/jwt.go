// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces declared by the consumers.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of a session token when none is configured.
const DefaultTokenTTL = time.Hour

// # Claim Names

const (
	ClaimName    = "unique_name"
	ClaimNameID  = "nameid"
	ClaimTokenID = "jti"
	ClaimRole    = "role"
)

// Claim is a single (name, value) pair to embed in a session token.
type Claim struct {
	Name  string
	Value string
}

// Claims is the ordered claim list handed to [TokenIssuer.Issue].
// Repeating a name (typically [ClaimRole]) is allowed.
type Claims []Claim

// AuthClaims represents the decoded payload of a session token.
//
// The middleware reconstructs the caller from these fields without a database
// round-trip, which is why roles are frozen at issuance time.
type AuthClaims struct {
	jwt.RegisteredClaims

	Username string   `json:"unique_name"`
	UserID   string   `json:"nameid"`
	Roles    []string `json:"role"`
}

// TokenID returns the unique token identifier ("jti").
func (c *AuthClaims) TokenID() string {
	return c.ID
}

// # Token Issuer

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// IssuerOption customizes a [TokenIssuer].
type IssuerOption func(*TokenIssuer)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) IssuerOption {
	return func(issuer *TokenIssuer) {
		issuer.now = now
	}
}

// NewTokenIssuer creates a new TokenIssuer.
//
// A missing secret, issuer or audience is a configuration failure and must stop
// the process during startup.
func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration, opts ...IssuerOption) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret is empty")
	}
	if issuer == "" || audience == "" {
		return nil, errors.New("sec: token issuer and audience are required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	tokenIssuer := &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(tokenIssuer)
	}

	return tokenIssuer, nil
}

// Issue signs the given claims together with issuer, audience, issued-at and
// expiry. Every [ClaimRole] entry is collected into a single JSON array.
//
// It returns the signed token and its expiry.
func (issuer *TokenIssuer) Issue(claims Claims) (string, time.Time, error) {
	issuedAt := issuer.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(issuer.ttl)

	payload := jwt.MapClaims{}
	roles := make([]string, 0, len(claims))

	for _, claim := range claims {
		if claim.Name == ClaimRole {
			roles = append(roles, claim.Value)
			continue
		}
		payload[claim.Name] = claim.Value
	}

	payload[ClaimRole] = roles
	payload["iss"] = issuer.issuer
	payload["aud"] = issuer.audience
	payload["iat"] = jwt.NewNumericDate(issuedAt)
	payload["exp"] = jwt.NewNumericDate(expiresAt)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signedToken, err := token.SignedString(issuer.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// VerifyToken checks signature, algorithm, issuer, audience and expiry.
func (issuer *TokenIssuer) VerifyToken(tokenString string) (*AuthClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer.issuer),
		jwt.WithAudience(issuer.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(issuer.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return issuer.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}

// UnverifiedExpiry reads the "exp" claim without checking the signature.
//
// It is only used to bound how long a revocation must be remembered. It returns
// the zero time when the token cannot be decoded or carries no expiry.
func UnverifiedExpiry(tokenString string) time.Time {
	claims := &AuthClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
