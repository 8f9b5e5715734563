package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nominapp/nominacli/internal/models"
)

const payrollSheet = "Nomina"

var xlsxHeaders = []string{
	"Empleado", "Departamento", "Puesto", "Periodo",
	"Salario Base", "Bonos", "Deducciones", "Neto", "Estado",
}

// PayrollXLSX writes the payroll report as a spreadsheet: a header row plus
// one row per record. No totals row; spreadsheet users sum for themselves.
func (e *Exporter) PayrollXLSX(periodo string, records []models.PayrollRecord) (string, error) {
	path, err := e.targetPath(ReportFileName(periodo, "xlsx"))
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payrollSheet); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(payrollSheet, cell, h); err != nil {
			return "", err
		}
	}

	for row, r := range records {
		values := []any{
			r.Empleado, r.Departamento, r.Puesto, r.Periodo,
			RoundMoney(r.SalarioBase).InexactFloat64(),
			RoundMoney(r.TotalBonos).InexactFloat64(),
			RoundMoney(r.TotalDeducciones).InexactFloat64(),
			RoundMoney(r.TotalNeto).InexactFloat64(),
			r.Estado,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(payrollSheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("write xlsx %s: %w", path, err)
	}
	return path, nil
}
