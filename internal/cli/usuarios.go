package cli

import (
	"context"
	"fmt"

	"github.com/nominapp/nominacli/internal/guard"
)

// Usuarios manages application accounts (Admin only).
// Usage: usuarios | usuarios toggle <id>
func (a *App) Usuarios(ctx context.Context, args []string) error {
	return a.guarded(ctx, guard.SectionUsuarios, func(ctx context.Context) error {
		if len(args) > 0 && args[0] == "toggle" {
			if len(args) < 2 {
				printlnFn("Uso: usuarios toggle <id>")
				return nil
			}
			id, ok := parseID(args[1])
			if !ok {
				return nil
			}
			return a.confirmToggle("usuario", id, func() error {
				return a.users.ToggleUsuario(ctx, id)
			})
		}

		list, err := a.users.Usuarios(ctx)
		if err != nil {
			return err
		}
		for _, u := range list {
			printlnFn(fmt.Sprintf("%4d  %-30s %-25s %-10s %s",
				u.ID, u.Nombre, u.Email, u.Rol, activeMark(u.Activo)))
		}
		return nil
	})
}
