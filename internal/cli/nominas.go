package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nominapp/nominacli/internal/api"
	"github.com/nominapp/nominacli/internal/guard"
	"github.com/nominapp/nominacli/internal/models"
)

// Nominas lists the payroll grouped by period, with per-period totals and
// averages.
func (a *App) Nominas(ctx context.Context) error {
	return a.guarded(ctx, guard.SectionNomina, func(ctx context.Context) error {
		groups, err := a.payroll.Periods(ctx)
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			printlnFn("No hay nominas registradas.")
			return nil
		}

		for _, g := range groups {
			printlnFn(fmt.Sprintf("Periodo %s  (%d empleados, total %s, promedio %s)",
				g.Periodo, len(g.Records), a.money.Format(g.Total), a.money.Format(g.Average)))
			for _, r := range g.Records {
				printlnFn(fmt.Sprintf("  %-30s %-20s neto %12s  %s",
					r.Empleado, r.Puesto, a.money.Format(r.TotalNeto), r.Estado))
			}
		}
		return nil
	})
}

// Generar creates a payroll run after an explicit confirmation.
func (a *App) Generar(ctx context.Context) error {
	return a.guarded(ctx, guard.SectionNomina, func(ctx context.Context) error {
		periodo, err := getSimpleText(a.reader, "Periodo (ej. Enero 2026)", os.Stdout)
		if err != nil {
			return err
		}
		inicio, err := getSimpleText(a.reader, "Fecha inicio (YYYY-MM-DD)", os.Stdout)
		if err != nil {
			return err
		}
		fin, err := getSimpleText(a.reader, "Fecha fin (YYYY-MM-DD)", os.Stdout)
		if err != nil {
			return err
		}

		ok, err := getConfirm(a.reader, fmt.Sprintf("Generar la nomina del periodo %q?", periodo), os.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			printlnFn("Operacion cancelada.")
			return nil
		}

		err = a.payroll.Generate(ctx, models.GenerarNominaRequest{
			Periodo: periodo, FechaInicio: inicio, FechaFin: fin,
		})
		if err != nil {
			var be *api.BusinessError
			if errors.As(err, &be) {
				printlnFn(be.Message)
				return nil
			}
			return err
		}

		printlnFn("Nomina generada.")
		return nil
	})
}

// Export writes the payroll report of one period to disk.
// Usage: export pdf|xlsx <periodo>
func (a *App) Export(ctx context.Context, args []string) error {
	return a.guarded(ctx, guard.SectionReportes, func(ctx context.Context) error {
		if len(args) < 2 {
			printlnFn("Uso: export pdf|xlsx <periodo>")
			return nil
		}
		format := args[0]
		periodo := strings.Join(args[1:], " ")

		records, err := a.payroll.List(ctx)
		if err != nil {
			return err
		}
		var selected []models.PayrollRecord
		for _, r := range records {
			if r.Periodo == periodo {
				selected = append(selected, r)
			}
		}

		var path string
		switch format {
		case "pdf":
			path, err = a.exporter.PayrollPDF(periodo, selected)
		case "xlsx":
			path, err = a.exporter.PayrollXLSX(periodo, selected)
		default:
			printlnFn("Formato desconocido:", format)
			return nil
		}
		if err != nil {
			return err
		}

		printlnFn(fmt.Sprintf("Reporte con %d registros escrito en %s", len(selected), path))
		return nil
	})
}

// Voucher fetches one employee's receipt and writes it as PDF.
// Usage: voucher <idEmpleado> <periodo>
func (a *App) Voucher(ctx context.Context, args []string) error {
	return a.guarded(ctx, guard.SectionReportes, func(ctx context.Context) error {
		if len(args) < 2 {
			printlnFn("Uso: voucher <idEmpleado> <periodo>")
			return nil
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			printlnFn("idEmpleado invalido:", args[0])
			return nil
		}
		periodo := strings.Join(args[1:], " ")

		v, err := a.payroll.Voucher(ctx, id, periodo)
		if err != nil {
			var be *api.BusinessError
			if errors.As(err, &be) {
				printlnFn(be.Message)
				return nil
			}
			return err
		}

		path, err := a.exporter.VoucherPDF(v)
		if err != nil {
			return err
		}
		printlnFn("Voucher escrito en", path)
		return nil
	})
}
