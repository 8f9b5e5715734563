package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nominapp/nominacli/internal/api"
	"github.com/nominapp/nominacli/internal/guard"
	"github.com/nominapp/nominacli/internal/listx"
	"github.com/nominapp/nominacli/internal/models"
)

func activeMark(activo bool) string {
	if activo {
		return "activo"
	}
	return "inactivo"
}

// confirmToggle runs a toggle after a y/N confirm; a backend rejection
// (BusinessError) is shown verbatim instead of failing the command.
func (a *App) confirmToggle(what string, id int64, toggle func() error) error {
	ok, err := getConfirm(a.reader, fmt.Sprintf("Cambiar estado de %s %d?", what, id), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Operacion cancelada.")
		return nil
	}

	if err := toggle(); err != nil {
		var be *api.BusinessError
		if errors.As(err, &be) {
			printlnFn(be.Message)
			return nil
		}
		return err
	}
	printlnFn("Estado actualizado.")
	return nil
}

func parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Identificador invalido:", arg)
		return 0, false
	}
	return id, true
}

// Empleados handles the employee catalog.
// Usage: empleados [texto de busqueda] | empleados nuevo |
// empleados editar <id> | empleados toggle <id>
func (a *App) Empleados(ctx context.Context, args []string) error {
	return a.guarded(ctx, guard.SectionEmpleados, func(ctx context.Context) error {
		if len(args) > 0 {
			switch args[0] {
			case "nuevo":
				return a.nuevoEmpleado(ctx)
			case "editar":
				if len(args) < 2 {
					printlnFn("Uso: empleados editar <id>")
					return nil
				}
				id, ok := parseID(args[1])
				if !ok {
					return nil
				}
				return a.editarEmpleado(ctx, id)
			case "toggle":
				if len(args) < 2 {
					printlnFn("Uso: empleados toggle <id>")
					return nil
				}
				id, ok := parseID(args[1])
				if !ok {
					return nil
				}
				return a.confirmToggle("empleado", id, func() error {
					return a.catalog.ToggleEmpleado(ctx, id)
				})
			}
		}

		list, err := a.catalog.Empleados(ctx)
		if err != nil {
			return err
		}

		page := listx.Paginate(listx.Filter(list, strings.Join(args, " "),
			func(e models.Empleado) string { return e.Nombre },
			func(e models.Empleado) string { return e.Email },
			func(e models.Empleado) string { return e.Departamento },
			func(e models.Empleado) string { return e.Puesto },
		), 1, pageSize)

		for _, e := range page.Items {
			printlnFn(fmt.Sprintf("%4d  %-30s %-25s %-15s %12s  %s",
				e.ID, e.Nombre, e.Email, e.Departamento, a.money.Format(e.Salario), activeMark(e.Activo)))
		}
		printlnFn(fmt.Sprintf("Pagina %d/%d (%d registros)", page.Number, page.Pages, page.Count))
		return nil
	})
}

func (a *App) nuevoEmpleado(ctx context.Context) error {
	e := models.Empleado{}
	var err error
	if e.Nombre, err = getSimpleText(a.reader, "Nombre", os.Stdout); err != nil {
		return err
	}
	if e.Email, err = getSimpleText(a.reader, "Correo", os.Stdout); err != nil {
		return err
	}
	if e.Departamento, err = getSimpleText(a.reader, "Departamento", os.Stdout); err != nil {
		return err
	}
	if e.Puesto, err = getSimpleText(a.reader, "Puesto", os.Stdout); err != nil {
		return err
	}
	raw, err := getSimpleText(a.reader, "Salario", os.Stdout)
	if err != nil {
		return err
	}
	if e.Salario, err = decimal.NewFromString(raw); err != nil {
		printlnFn("Salario invalido:", raw)
		return nil
	}

	created, err := a.catalog.SaveEmpleado(ctx, e)
	if err != nil {
		var be *api.BusinessError
		if errors.As(err, &be) {
			printlnFn(be.Message)
			return nil
		}
		return err
	}
	printlnFn("Empleado creado con id", created.ID)
	return nil
}

// editarEmpleado re-prompts every field; an empty answer keeps the current
// value.
func (a *App) editarEmpleado(ctx context.Context, id int64) error {
	list, err := a.catalog.Empleados(ctx)
	if err != nil {
		return err
	}
	var current *models.Empleado
	for i := range list {
		if list[i].ID == id {
			current = &list[i]
			break
		}
	}
	if current == nil {
		printlnFn("No existe el empleado", id)
		return nil
	}

	e := *current
	prompts := []struct {
		label string
		field *string
	}{
		{"Nombre", &e.Nombre},
		{"Correo", &e.Email},
		{"Departamento", &e.Departamento},
		{"Puesto", &e.Puesto},
	}
	for _, p := range prompts {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", p.label, *p.field), os.Stdout)
		if err != nil {
			return err
		}
		if answer != "" {
			*p.field = answer
		}
	}
	raw, err := getSimpleText(a.reader, fmt.Sprintf("Salario [%s]", a.money.Format(e.Salario)), os.Stdout)
	if err != nil {
		return err
	}
	if raw != "" {
		if e.Salario, err = decimal.NewFromString(raw); err != nil {
			printlnFn("Salario invalido:", raw)
			return nil
		}
	}

	if _, err := a.catalog.SaveEmpleado(ctx, e); err != nil {
		var be *api.BusinessError
		if errors.As(err, &be) {
			printlnFn(be.Message)
			return nil
		}
		return err
	}
	printlnFn("Empleado actualizado.")
	return nil
}

// Departamentos handles the department catalog.
// Usage: departamentos [busqueda] | departamentos nuevo | departamentos toggle <id>
func (a *App) Departamentos(ctx context.Context, args []string) error {
	return a.guarded(ctx, guard.SectionDepartamentos, func(ctx context.Context) error {
		if len(args) > 0 {
			switch args[0] {
			case "nuevo":
				d := models.Departamento{}
				var err error
				if d.Nombre, err = getSimpleText(a.reader, "Nombre", os.Stdout); err != nil {
					return err
				}
				if d.Descripcion, err = getSimpleText(a.reader, "Descripcion", os.Stdout); err != nil {
					return err
				}
				created, err := a.catalog.SaveDepartamento(ctx, d)
				if err != nil {
					return err
				}
				printlnFn("Departamento creado con id", created.ID)
				return nil
			case "toggle":
				if len(args) < 2 {
					printlnFn("Uso: departamentos toggle <id>")
					return nil
				}
				id, ok := parseID(args[1])
				if !ok {
					return nil
				}
				return a.confirmToggle("departamento", id, func() error {
					return a.catalog.ToggleDepartamento(ctx, id)
				})
			}
		}

		list, err := a.catalog.Departamentos(ctx)
		if err != nil {
			return err
		}

		page := listx.Paginate(listx.Filter(list, strings.Join(args, " "),
			func(d models.Departamento) string { return d.Nombre },
			func(d models.Departamento) string { return d.Descripcion },
		), 1, pageSize)

		for _, d := range page.Items {
			printlnFn(fmt.Sprintf("%4d  %-25s %-40s %s", d.ID, d.Nombre, d.Descripcion, activeMark(d.Activo)))
		}
		printlnFn(fmt.Sprintf("Pagina %d/%d (%d registros)", page.Number, page.Pages, page.Count))
		return nil
	})
}

// Puestos handles the position catalog.
// Usage: puestos [busqueda] | puestos nuevo | puestos toggle <id>
func (a *App) Puestos(ctx context.Context, args []string) error {
	return a.guarded(ctx, guard.SectionPuestos, func(ctx context.Context) error {
		if len(args) > 0 {
			switch args[0] {
			case "nuevo":
				p := models.Puesto{}
				var err error
				if p.Nombre, err = getSimpleText(a.reader, "Nombre", os.Stdout); err != nil {
					return err
				}
				if p.Departamento, err = getSimpleText(a.reader, "Departamento", os.Stdout); err != nil {
					return err
				}
				raw, err := getSimpleText(a.reader, "Salario base", os.Stdout)
				if err != nil {
					return err
				}
				if p.SalarioBase, err = decimal.NewFromString(raw); err != nil {
					printlnFn("Salario invalido:", raw)
					return nil
				}
				created, err := a.catalog.SavePuesto(ctx, p)
				if err != nil {
					return err
				}
				printlnFn("Puesto creado con id", created.ID)
				return nil
			case "toggle":
				if len(args) < 2 {
					printlnFn("Uso: puestos toggle <id>")
					return nil
				}
				id, ok := parseID(args[1])
				if !ok {
					return nil
				}
				return a.confirmToggle("puesto", id, func() error {
					return a.catalog.TogglePuesto(ctx, id)
				})
			}
		}

		list, err := a.catalog.Puestos(ctx)
		if err != nil {
			return err
		}

		page := listx.Paginate(listx.Filter(list, strings.Join(args, " "),
			func(p models.Puesto) string { return p.Nombre },
			func(p models.Puesto) string { return p.Departamento },
		), 1, pageSize)

		for _, p := range page.Items {
			printlnFn(fmt.Sprintf("%4d  %-25s %-20s %12s  %s",
				p.ID, p.Nombre, p.Departamento, a.money.Format(p.SalarioBase), activeMark(p.Activo)))
		}
		printlnFn(fmt.Sprintf("Pagina %d/%d (%d registros)", page.Number, page.Pages, page.Count))
		return nil
	})
}
