package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nominapp/nominacli/internal/models"
)

type fakeSession struct {
	loading bool
	user    *models.User
}

func (f *fakeSession) Loading() bool         { return f.loading }
func (f *fakeSession) Current() *models.User { return f.user }

type fakeCreds struct {
	token string
	user  *models.User
	err   error
}

func (f *fakeCreds) Read(ctx context.Context) (string, *models.User, error) {
	return f.token, f.user, f.err
}

func TestCheck_WaitWhileLoading(t *testing.T) {
	g := New(&fakeSession{loading: true}, &fakeCreds{token: "abc", user: &models.User{ID: 1}})
	require.Equal(t, Wait, g.Check(context.Background(), SectionNomina))
}

func TestCheck_AllowWithValidPair(t *testing.T) {
	u := &models.User{ID: 1, Nombre: "Ana", Rol: models.RoleHR, Token: "abc"}
	g := New(&fakeSession{user: u}, &fakeCreds{token: "abc", user: u})
	require.Equal(t, Allow, g.Check(context.Background(), SectionNomina))
}

func TestCheck_RedirectWithoutCredentials(t *testing.T) {
	g := New(&fakeSession{}, &fakeCreds{})

	require.Equal(t, Redirect, g.Check(context.Background(), SectionEmpleados))
	require.Equal(t, SectionEmpleados, g.ConsumeRequested())
	require.Equal(t, Section(""), g.ConsumeRequested(), "requested destination is consumed once")
}

// A logout (or 401 teardown) elsewhere clears the store; the guard honors it
// even while the fake session still holds the old user.
func TestCheck_StoreClearedButSessionStale(t *testing.T) {
	stale := &models.User{ID: 1, Nombre: "Ana", Rol: models.RoleHR, Token: "abc"}
	g := New(&fakeSession{user: stale}, &fakeCreds{token: "", user: nil})

	require.Equal(t, Redirect, g.Check(context.Background(), SectionReportes))
}

func TestCheck_StoreErrorRedirects(t *testing.T) {
	g := New(&fakeSession{}, &fakeCreds{err: errors.New("db locked")})
	require.Equal(t, Redirect, g.Check(context.Background(), SectionNomina))
}
