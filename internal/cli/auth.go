package cli

import (
	"context"
	"errors"
	"os"

	"github.com/nominapp/nominacli/internal/api"
	"github.com/nominapp/nominacli/internal/common"
	"github.com/nominapp/nominacli/internal/guard"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirm = GetConfirm

// Login prompts for credentials and authenticates via the session gateway.
// Bad credentials and an unreachable backend are reported inline; the
// password buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Correo", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrBadCredentials):
			printlnFn("Correo o contrasena incorrectos.")
			return nil
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("No se pudo contactar al servidor, intenta mas tarde.")
			return nil
		}
		return err
	}

	printlnFn("Hola,", u.Nombre)
	return nil
}

// Logout clears stored credentials and the in-memory session. Safe to call
// when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gateway.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Sesion cerrada.")
	return nil
}

// Menu prints the sections visible to the current user's role.
func (a *App) Menu(ctx context.Context) error {
	u := a.gateway.Session().Current()
	sections := guard.Menu(u)
	if len(sections) == 0 {
		printlnFn("Sin sesion activa; inicia sesion para ver el menu.")
		return nil
	}

	printlnFn("Secciones disponibles:")
	for _, s := range sections {
		printlnFn("  -", string(s))
	}
	return nil
}
