// Package session tracks the authenticated identity for a browser
// session. Sessions are keyed by an opaque identifier carried in a
// cookie; the identity itself lives server-side in the store.
package session

import "context"

// Identity is the snapshot of the logged-in user kept in the session.
type Identity struct {
	UserID int64  `json:"id"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
}

// Store is the session lifecycle: created at login, read per request,
// destroyed at logout. Get reports absence via the bool, not an error.
type Store interface {
	Create(ctx context.Context, ident Identity) (string, error)
	Get(ctx context.Context, id string) (Identity, bool, error)
	Destroy(ctx context.Context, id string) error
}
