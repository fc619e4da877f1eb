// Package models defines the wire-level records exchanged with the pantry
// backend.
package models

import "time"

// Identity is the authenticated user's profile as returned by GET /auth/me.
// The session layer stores and exposes it verbatim; nothing client-side
// branches on its fields.
type Identity struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
