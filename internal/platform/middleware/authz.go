// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/ctxutil"
	requestutil "github.com/ianbriton/blogapi/internal/platform/request"
	"github.com/ianbriton/blogapi/internal/platform/respond"
	"github.com/ianbriton/blogapi/internal/platform/sec"
)

// RevocationChecker reports whether a raw token has been revoked.
type RevocationChecker interface {
	IsRevoked(token string) bool
}

// TokenVerifier verifies a raw token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// RevocationGate rejects requests that carry a revoked token.
//
// # Ordering
//
// Must be registered BEFORE [Authenticate] so that a revoked token never
// reaches signature validation or any handler.
//
// # Flow
//  1. No Authorization header: pass through untouched.
//  2. Strip the Bearer scheme and look the raw token up in the blacklist.
//  3. Revoked: terminal 401. Otherwise pass through untouched.
func RevocationGate(blacklist RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := requestutil.BearerToken(request)
			if ok && blacklist.IsRevoked(token) {
				ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "revoked_token_rejected")
				respond.Error(writer, request, apperr.Unauthorized("Token has been revoked"))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// Authenticate verifies the bearer token and injects its claims.
//
// A missing or invalid token leaves the request anonymous; routes that need a
// principal are protected by [RequireAuth] or [RequireRole].
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := requestutil.BearerToken(request)
			if !ok {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_rejected",
					slog.String("reason", err.Error()),
				)
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("user_id", claims.UserID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks anonymous requests with 401.
//
// Must be registered AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return RequireRole()(next)
}

// RequireRole blocks requests whose token holds none of roles.
//
// Anonymous requests get 401, authenticated ones lacking a role get 403.
// Roles are read from the token, so a grant only takes effect on the next login.
// With no roles it behaves like [RequireAuth].
func RequireRole(roles ...sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !sec.HasAny(claims.Roles, roles...) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
