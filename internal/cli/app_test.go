package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nominapp/nominacli/internal/export"
	"github.com/nominapp/nominacli/internal/guard"
	"github.com/nominapp/nominacli/internal/logging"
	"github.com/nominapp/nominacli/internal/models"
	"github.com/nominapp/nominacli/internal/session"
)

type fakeAuthClient struct {
	user     *models.User
	loginErr error

	Token string
	hook  func()
}

func (f *fakeAuthClient) SetToken(token string)    { f.Token = token }
func (f *fakeAuthClient) OnUnauthorized(fn func()) { f.hook = fn }

func (f *fakeAuthClient) Perfil(ctx context.Context) (*models.User, error) {
	return f.user, nil
}

func (f *fakeAuthClient) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func newTestApp(t *testing.T, auth *fakeAuthClient) *App {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store, err := session.OpenStore(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)

	gw := session.NewGateway(auth, store, log)
	return &App{
		gateway: gw,
		guard:   guard.New(gw.Session(), gw.Store()),
		money:   export.NewMoneyFormatter("es"),
		log:     log,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func stubLoginPrompts(t *testing.T) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return "ana@acme.mx", nil
	}
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("secreta"), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func TestGuarded_WaitWhileValidating(t *testing.T) {
	app := newTestApp(t, &fakeAuthClient{})
	out := captureOutput(t)

	// Initialize has not run yet, so the session is still loading.
	ran := false
	err := app.guarded(context.Background(), guard.SectionNomina, func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, ran)
	require.Contains(t, strings.Join(*out, ""), "validando")
}

func TestGuarded_RedirectLoginThenResume(t *testing.T) {
	auth := &fakeAuthClient{user: &models.User{
		ID: 3, Nombre: "Ana", Email: "ana@acme.mx", Rol: models.RoleEmpleado, Token: "tok-1",
	}}
	app := newTestApp(t, auth)
	require.NoError(t, app.gateway.Initialize(context.Background()))
	stubLoginPrompts(t)
	captureOutput(t)

	ran := false
	err := app.guarded(context.Background(), guard.SectionDocumentos, func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran, "command resumes after successful login")
	require.Equal(t, "tok-1", auth.Token)
}

func TestGuarded_RoleDeniedAfterLogin(t *testing.T) {
	auth := &fakeAuthClient{user: &models.User{
		ID: 3, Nombre: "Ana", Rol: models.RoleEmpleado, Token: "tok-1",
	}}
	app := newTestApp(t, auth)
	require.NoError(t, app.gateway.Initialize(context.Background()))
	stubLoginPrompts(t)
	out := captureOutput(t)

	ran := false
	err := app.guarded(context.Background(), guard.SectionNomina, func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, ran, "Empleado must not reach the payroll section")
	require.Contains(t, strings.Join(*out, ""), "no tiene acceso")
}

func TestGuarded_AllowWhenLoggedIn(t *testing.T) {
	auth := &fakeAuthClient{user: &models.User{
		ID: 1, Nombre: "Admin", Rol: models.RoleAdmin, Token: "tok-9",
	}}
	app := newTestApp(t, auth)
	require.NoError(t, app.gateway.Initialize(context.Background()))
	captureOutput(t)

	_, err := app.gateway.Login(context.Background(), "admin@acme.mx", []byte("x"))
	require.NoError(t, err)

	ran := false
	require.NoError(t, app.guarded(context.Background(), guard.SectionUsuarios, func(context.Context) error {
		ran = true
		return nil
	}))
	require.True(t, ran)
}

func TestStatusLine(t *testing.T) {
	auth := &fakeAuthClient{user: &models.User{
		ID: 1, Nombre: "Ana", Rol: models.RoleHR, Token: "tok",
	}}
	app := newTestApp(t, auth)
	require.NoError(t, app.gateway.Initialize(context.Background()))

	require.Equal(t, "", app.statusLine())

	_, err := app.gateway.Login(context.Background(), "ana@acme.mx", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, "(Ana HR)", app.statusLine())

	require.NoError(t, app.gateway.Logout(context.Background()))
	require.Equal(t, "", app.statusLine())
}
