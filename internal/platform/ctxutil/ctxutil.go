// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/ianbriton/blogapi/internal/platform/ctxkey"
	"github.com/ianbriton/blogapi/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// PrincipalSlot lets middleware that wraps authentication learn who the
// request ran as once the inner handlers return. It belongs to one request.
type PrincipalSlot struct {
	UserID string
}

// WithPrincipalSlot attaches an empty [PrincipalSlot] to the context.
func WithPrincipalSlot(ctx context.Context) (context.Context, *PrincipalSlot) {
	slot := &PrincipalSlot{}
	return context.WithValue(ctx, ctxkey.KeyPrincipalSlot, slot), slot
}

// WithAuthUser returns a new context carrying verified session claims and
// records the user in the enclosing [PrincipalSlot], if any.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	if slot, ok := ctx.Value(ctxkey.KeyPrincipalSlot).(*PrincipalSlot); ok && user != nil {
		slot.UserID = user.UserID
	}
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
// It returns nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
