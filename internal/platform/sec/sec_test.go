// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianbriton/blogapi/internal/platform/sec"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "blogapi"
	testAudience = "blogapi-clients"
)

func newIssuer(t *testing.T, now time.Time) *sec.TokenIssuer {
	t.Helper()
	issuer, err := sec.NewTokenIssuer(testSecret, testIssuer, testAudience, time.Hour, sec.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return issuer
}

/*
TestIssue_RoundTrip verifies that decoding a token yields the subject, roles and a one hour expiry.
*/
func TestIssue_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newIssuer(t, now)

	token, expiresAt, err := issuer.Issue(sec.Claims{
		{Name: sec.ClaimName, Value: "alice"},
		{Name: sec.ClaimNameID, Value: "user-1"},
		{Name: sec.ClaimTokenID, Value: "jti-1"},
		{Name: sec.ClaimRole, Value: "User"},
		{Name: sec.ClaimRole, Value: "Admin"},
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := issuer.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jti-1", claims.TokenID())
	assert.Equal(t, []string{"User", "Admin"}, claims.Roles)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testAudience}, claims.Audience)
	assert.Equal(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time)
}

/*
TestVerify_Rejections covers the failure paths handled by the downstream validator.
*/
func TestVerify_Rejections(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newIssuer(t, now)
	token, _, err := issuer.Issue(sec.Claims{{Name: sec.ClaimName, Value: "alice"}})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := newIssuer(t, now.Add(2*time.Hour))
		_, err := later.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other, err := sec.NewTokenIssuer("ffffffffffffffffffffffffffffffff", testIssuer, testAudience, time.Hour, sec.WithClock(func() time.Time { return now }))
		require.NoError(t, err)
		_, err = other.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong_audience", func(t *testing.T) {
		other, err := sec.NewTokenIssuer(testSecret, testIssuer, "someone-else", time.Hour, sec.WithClock(func() time.Time { return now }))
		require.NoError(t, err)
		_, err = other.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.VerifyToken("not-a-token")
		assert.Error(t, err)
	})
}

/*
TestNewTokenIssuer_RequiresSecret makes a missing key a construction failure.
*/
func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := sec.NewTokenIssuer("", testIssuer, testAudience, time.Hour)
	assert.Error(t, err)

	_, err = sec.NewTokenIssuer(testSecret, "", testAudience, time.Hour)
	assert.Error(t, err)
}

/*
TestUnverifiedExpiry reads exp without a key and tolerates junk.
*/
func TestUnverifiedExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, expiresAt, err := newIssuer(t, now).Issue(nil)
	require.NoError(t, err)

	assert.Equal(t, expiresAt, sec.UnverifiedExpiry(token).UTC())
	assert.True(t, sec.UnverifiedExpiry("junk").IsZero())
}

/*
TestHasAny verifies membership semantics of role guards.
*/
func TestHasAny(t *testing.T) {
	tests := []struct {
		name     string
		held     []string
		required []sec.Role
		want     bool
	}{
		{"no_requirement", nil, nil, true},
		{"exact_match", []string{"User"}, []sec.Role{sec.RoleUser}, true},
		{"any_of", []string{"Owner"}, []sec.Role{sec.RoleAdmin, sec.RoleOwner}, true},
		{"owner_is_not_admin", []string{"User", "Owner"}, []sec.Role{sec.RoleAdmin}, false},
		{"case_sensitive", []string{"admin"}, []sec.Role{sec.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.HasAny(tt.held, tt.required...))
		})
	}
}

/*
TestPasswordHash checks bcrypt round trips.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("Str0ng!Pass")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("Str0ng!Pass", hash))
	assert.False(t, sec.CheckPasswordHash("wrong", hash))
}
