package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nominapp/nominacli/internal/api"
	"github.com/nominapp/nominacli/internal/logging"
	"github.com/nominapp/nominacli/internal/models"
)

// AuthClient is the slice of the API surface the gateway needs.
// *api.HTTPClient satisfies it.
type AuthClient interface {
	SetToken(token string)
	OnUnauthorized(fn func())
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Perfil(ctx context.Context) (*models.User, error)
}

// Gateway is the single writer of the Session. It validates stored
// credentials at startup, performs login/logout, and tears the session down
// when any backend call reports the token is no longer accepted.
type Gateway struct {
	client  AuthClient
	store   *Store
	session *Session
	log     logging.Logger
}

// NewGateway wires a gateway to the API client and credential store. It
// registers itself as the client's 401 hook, so an authorization-denied
// response anywhere in the app triggers the same teardown as an explicit
// logout.
func NewGateway(client AuthClient, store *Store, log logging.Logger) *Gateway {
	g := &Gateway{
		client:  client,
		store:   store,
		session: NewSession(),
		log:     log,
	}
	client.OnUnauthorized(g.handleUnauthorized)
	return g
}

// Session exposes the state for readers (guard, menu, feature flows).
func (g *Gateway) Session() *Session {
	return g.session
}

// Store exposes the credential store so the guard can re-check it directly.
func (g *Gateway) Store() *Store {
	return g.store
}

// Initialize restores the session from stored credentials. Branches:
//
//   - token + cached user: adopt synchronously, no network call. Cached trust
//     is bounded: a token that is an already-expired JWT falls through to
//     revalidation instead.
//   - token only: validate via GET /auth/perfil; adopt the merged profile on
//     success, clear everything on any failure (fail closed).
//   - neither: stay unauthenticated.
//
// In every branch the loading flag flips to false exactly once, after any
// validation call has completed.
func (g *Gateway) Initialize(ctx context.Context) error {
	defer g.session.finishLoading()

	token, cached, err := g.store.Read(ctx)
	if err != nil {
		g.log.Warn(ctx, "stored credentials unreadable, clearing", "err", err)
		g.teardown(ctx)
		return nil
	}
	if token == "" {
		return nil
	}

	if cached != nil && !tokenExpired(token) {
		cached.Token = token
		g.client.SetToken(token)
		g.session.set(cached)
		g.log.Info(ctx, "session restored from cache", "usuario", cached.Email, "rol", cached.Rol)
		return nil
	}

	g.client.SetToken(token)
	u, err := g.client.Perfil(ctx)
	if err != nil {
		g.log.Warn(ctx, "stored token rejected, clearing session", "err", err)
		g.teardown(ctx)
		return nil
	}

	u.Token = token
	if err := g.store.Save(ctx, token, u); err != nil {
		g.log.Warn(ctx, "could not refresh cached user", "err", err)
	}
	g.session.set(u)
	g.log.Info(ctx, "session validated against backend", "usuario", u.Email, "rol", u.Rol)
	return nil
}

// Login authenticates against the backend. On failure the session state is
// left untouched and the error is returned for inline display.
func (g *Gateway) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	u, err := g.client.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return nil, err
	}
	if u.Token == "" {
		return nil, fmt.Errorf("%w: login response without token", api.ErrUnexpectedShape)
	}

	if err := g.store.Save(ctx, u.Token, u); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	g.client.SetToken(u.Token)
	g.session.set(u)
	g.log.Info(ctx, "login ok", "usuario", u.Email, "rol", u.Rol)
	return u, nil
}

// Logout clears stored credentials and the in-memory user. Calling it while
// already unauthenticated is a no-op.
func (g *Gateway) Logout(ctx context.Context) error {
	g.teardown(ctx)
	g.log.Info(ctx, "logout")
	return nil
}

// handleUnauthorized is the global 401 path. It runs on whatever goroutine
// received the response; teardown is safe to repeat and in-flight feature
// calls simply fail with api.ErrUnauthorized afterwards.
func (g *Gateway) handleUnauthorized() {
	ctx := context.Background()
	g.log.Warn(ctx, "authorization denied, tearing session down")
	g.teardown(ctx)
}

func (g *Gateway) teardown(ctx context.Context) {
	if err := g.store.Clear(ctx); err != nil {
		g.log.Error(ctx, "clear stored credentials", "err", err)
	}
	g.client.SetToken("")
	g.session.set(nil)
}

// tokenExpired inspects the token as an unverified JWT and reports whether
// its exp claim already passed. Opaque (non-JWT) tokens and tokens without
// exp are never considered expired here; the backend remains the authority.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
