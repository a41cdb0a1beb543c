// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Session is the server-side state bound to an opaque session token.
type Session struct {
	// User is the username the session was issued to.
	User string `json:"user"`

	// Role is the principal kind the session authenticates.
	Role Role `json:"role"`

	// Expires is the absolute expiry as fractional unix seconds.
	Expires float64 `json:"expires"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return s.Expires <= UnixSeconds(now)
}

// ExpiresAt returns Expires as a [time.Time].
func (s Session) ExpiresAt() time.Time {
	sec, frac := math.Modf(s.Expires)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// SessionTable maps session tokens to sessions. It is persisted as a single
// JSON object keyed by token.
type SessionTable map[string]Session

// PruneSessions returns a copy of table without the sessions that have
// expired at now. The input table is left untouched.
func PruneSessions(table SessionTable, now time.Time) SessionTable {
	pruned := make(SessionTable, len(table))
	for token, s := range table {
		if !s.Expired(now) {
			pruned[token] = s
		}
	}
	return pruned
}

// UnixSeconds converts t to fractional unix seconds.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
