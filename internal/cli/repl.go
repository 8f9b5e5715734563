package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Menu(ctx context.Context) error
	Empleados(ctx context.Context, args []string) error
	Departamentos(ctx context.Context, args []string) error
	Puestos(ctx context.Context, args []string) error
	Nominas(ctx context.Context) error
	Generar(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Voucher(ctx context.Context, args []string) error
	Documentos(ctx context.Context, args []string) error
	Subir(ctx context.Context) error
	Usuarios(ctx context.Context, args []string) error
}

// runREPL starts a read-eval-print loop for the Nomina CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed inline; only an
// authorization teardown escalates, and that happens globally through the
// API client's 401 hook rather than here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nomina %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Comandos: menu, empleados, departamentos, puestos, nominas, generar, export, voucher, documentos, subir, usuarios, logout, exit")
			} else {
				printlnFn("Comandos: login, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "menu":
			err = a.Menu(ctx)

		case "empleados":
			err = a.Empleados(ctx, args)

		case "departamentos":
			err = a.Departamentos(ctx, args)

		case "puestos":
			err = a.Puestos(ctx, args)

		case "nominas":
			err = a.Nominas(ctx)

		case "generar":
			err = a.Generar(ctx)

		case "export":
			err = a.Export(ctx, args)

		case "voucher":
			err = a.Voucher(ctx, args)

		case "documentos":
			err = a.Documentos(ctx, args)

		case "subir":
			err = a.Subir(ctx)

		case "usuarios":
			err = a.Usuarios(ctx, args)

		case "exit", "quit":
			printlnFn("Hasta luego!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
