// Package guard gates access to protected sections of the client. Decisions
// are made from the session plus a direct read of the credential store, so a
// teardown performed elsewhere (another command, the 401 hook) is honored
// even before the in-memory state has been observed by the caller.
package guard

import (
	"context"
	"sync"

	"github.com/nominapp/nominacli/internal/models"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Wait: the session is still validating stored credentials; neither
	// allow nor deny is permitted yet.
	Wait Decision = iota
	// Redirect: no valid credential pair exists; the caller must send the
	// user to login. The requested section is remembered for after login.
	Redirect
	// Allow: render the protected content.
	Allow
)

// SessionState is the read side of the session.
type SessionState interface {
	Loading() bool
	Current() *models.User
}

// CredentialReader re-checks the storage collaborator directly.
// *session.Store satisfies it.
type CredentialReader interface {
	Read(ctx context.Context) (string, *models.User, error)
}

// Guard evaluates access to sections and remembers the destination a denied
// navigation was aiming for.
type Guard struct {
	session SessionState
	store   CredentialReader

	mu        sync.Mutex
	requested Section
}

func New(session SessionState, store CredentialReader) *Guard {
	return &Guard{session: session, store: store}
}

// Check decides whether the user may enter section. A Redirect records the
// section so the flow can resume there after a successful login.
func (g *Guard) Check(ctx context.Context, section Section) Decision {
	if g.session.Loading() {
		return Wait
	}

	token, cached, err := g.store.Read(ctx)
	if err != nil || token == "" || cached == nil || cached.ID == 0 {
		g.mu.Lock()
		g.requested = section
		g.mu.Unlock()
		return Redirect
	}

	return Allow
}

// ConsumeRequested returns the destination recorded by the last Redirect and
// clears it. Empty when no navigation is pending.
func (g *Guard) ConsumeRequested() Section {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.requested
	g.requested = ""
	return s
}
