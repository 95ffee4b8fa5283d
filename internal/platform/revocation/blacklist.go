// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package revocation holds the process-wide set of revoked session tokens.

A [Blacklist] is created once by the composition root and shared by reference
with the logout handler (writer) and the revocation gate middleware (reader).
Nothing is persisted: a restart forgets every revocation, which is acceptable
because tokens are short-lived.

Concurrency:

  - Backed by xsync.MapOf, so Revoke and IsRevoked are safe for concurrent use
    without an external lock.
  - A Revoke that has returned is visible to every IsRevoked that starts after it.
*/
package revocation

import (
	"context"
	"log/slog"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// Blacklist is a concurrency-safe set of revoked raw token strings.
//
// Each entry remembers the expiry of the token it revokes so that [Blacklist.Sweep]
// can forget revocations that no longer matter. A zero expiry means "unknown" and
// the entry is kept for the process lifetime.
type Blacklist struct {
	entries *xsync.MapOf[string, time.Time]
	logger  *slog.Logger
}

// NewBlacklist creates an empty blacklist.
func NewBlacklist(logger *slog.Logger) *Blacklist {
	if logger == nil {
		logger = slog.Default()
	}
	return &Blacklist{
		entries: xsync.NewMapOf[string, time.Time](),
		logger:  logger,
	}
}

// Revoke records token as revoked until expiresAt.
//
// Revoking an already revoked token is a no-op; the first recorded expiry wins.
func (b *Blacklist) Revoke(token string, expiresAt time.Time) {
	b.entries.LoadOrStore(token, expiresAt)
}

// IsRevoked reports whether token has been revoked.
func (b *Blacklist) IsRevoked(token string) bool {
	_, found := b.entries.Load(token)
	return found
}

// Len returns the number of remembered revocations.
func (b *Blacklist) Len() int {
	return b.entries.Size()
}

// # Expiry Sweep

// Sweep drops revocations whose token expired before now and returns how many
// entries were removed. Expired tokens are rejected by signature/expiry
// validation anyway, so dropping them does not change what the gate accepts.
func (b *Blacklist) Sweep(now time.Time) int {
	removed := 0
	b.entries.Range(func(token string, expiresAt time.Time) bool {
		if !expiresAt.IsZero() && !expiresAt.After(now) {
			b.entries.Delete(token)
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps on every tick of interval until ctx is cancelled.
// A non-positive interval returns immediately.
func (b *Blacklist) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if removed := b.Sweep(now); removed > 0 {
				b.logger.Debug("blacklist_swept",
					slog.Int("removed", removed),
					slog.Int("remaining", b.Len()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}
