// Package cli implements the interactive terminal application: a REPL whose
// commands mirror the sections of the Nomina system. Every protected command
// passes through the route guard before it runs, and a backend 401 anywhere
// tears the session down globally.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/nominapp/nominacli/internal/api"
	"github.com/nominapp/nominacli/internal/config"
	"github.com/nominapp/nominacli/internal/export"
	"github.com/nominapp/nominacli/internal/guard"
	"github.com/nominapp/nominacli/internal/logging"
	"github.com/nominapp/nominacli/internal/services"
	"github.com/nominapp/nominacli/internal/session"

	_ "modernc.org/sqlite"
)

const pageSize = 20

type App struct {
	config   *config.Config
	gateway  *session.Gateway
	guard    *guard.Guard
	payroll  services.PayrollService
	catalog  services.CatalogService
	docs     services.DocumentService
	users    services.UserAdminService
	exporter *export.Exporter
	money    *export.MoneyFormatter
	log      logging.Logger
	reader   *bufio.Reader
}

// NewApp wires the full application: session store, API client, gateway,
// guard, services and exporters.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := session.OpenStore(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	gw := session.NewGateway(apiClient, store, log)

	return &App{
		config:   c,
		gateway:  gw,
		guard:    guard.New(gw.Session(), gw.Store()),
		payroll:  services.NewPayrollService(apiClient),
		catalog:  services.NewCatalogService(apiClient),
		docs:     services.NewDocumentService(apiClient),
		users:    services.NewUserAdminService(apiClient),
		exporter: export.NewExporter(c.ExportDir, c.OrgName, c.Locale),
		money:    export.NewMoneyFormatter(c.Locale),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and starts the REPL on stdin.
func (a *App) Run(ctx context.Context) error {
	if err := a.gateway.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}

	printlnFn("Bienvenido a Nomina CLI (escribe 'help' para ver los comandos)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.gateway.Session().Current() != nil
}

func (a *App) statusLine() string {
	u := a.gateway.Session().Current()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Nombre, u.Rol)
}

// guarded runs fn only when the guard and the role grants permit entering
// section. A Redirect offers login on the spot and then retries the original
// destination, so the user lands where they were heading.
func (a *App) guarded(ctx context.Context, section guard.Section, fn func(context.Context) error) error {
	switch a.guard.Check(ctx, section) {
	case guard.Wait:
		printlnFn("La sesion se esta validando, intenta de nuevo en un momento.")
		return nil

	case guard.Redirect:
		printlnFn("Necesitas iniciar sesion para entrar a", string(section))
		if err := a.Login(ctx); err != nil {
			return err
		}
		if !a.isLoggedIn() {
			a.guard.ConsumeRequested()
			return nil
		}
		requested := a.guard.ConsumeRequested()
		if requested == "" {
			requested = section
		}
		if a.guard.Check(ctx, requested) != guard.Allow {
			return nil
		}
		return a.authorized(ctx, requested, fn)
	}

	return a.authorized(ctx, section, fn)
}

func (a *App) authorized(ctx context.Context, section guard.Section, fn func(context.Context) error) error {
	u := a.gateway.Session().Current()
	if u == nil || !guard.Allowed(u.Rol, section) {
		printlnFn("Tu rol no tiene acceso a", string(section))
		return nil
	}
	return fn(ctx)
}
