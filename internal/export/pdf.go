package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/nominapp/nominacli/internal/models"
)

var payrollColumns = []struct {
	title string
	width float64
}{
	{"Empleado", 55},
	{"Departamento", 40},
	{"Puesto", 40},
	{"Salario Base", 30},
	{"Bonos", 25},
	{"Deducciones", 30},
	{"Neto", 30},
}

// PayrollPDF writes the payroll report for one period: a header with the
// organization and generation time, one row per record and a totals footer.
// An empty period still produces a valid document with header and footer.
func (e *Exporter) PayrollPDF(periodo string, records []models.PayrollRecord) (string, error) {
	path, err := e.targetPath(ReportFileName(periodo, "pdf"))
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Nomina %s", periodo), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, e.org, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Nomina del periodo: %s", periodo), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generado: %s", e.now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range payrollColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	var base, bonos, deducciones, neto decimal.Decimal
	pdf.SetFont("Helvetica", "", 9)
	for _, r := range records {
		pdf.CellFormat(payrollColumns[0].width, 6, r.Empleado, "1", 0, "L", false, 0, "")
		pdf.CellFormat(payrollColumns[1].width, 6, r.Departamento, "1", 0, "L", false, 0, "")
		pdf.CellFormat(payrollColumns[2].width, 6, r.Puesto, "1", 0, "L", false, 0, "")
		pdf.CellFormat(payrollColumns[3].width, 6, e.money.Format(r.SalarioBase), "1", 0, "R", false, 0, "")
		pdf.CellFormat(payrollColumns[4].width, 6, e.money.Format(r.TotalBonos), "1", 0, "R", false, 0, "")
		pdf.CellFormat(payrollColumns[5].width, 6, e.money.Format(r.TotalDeducciones), "1", 0, "R", false, 0, "")
		pdf.CellFormat(payrollColumns[6].width, 6, e.money.Format(r.TotalNeto), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)

		base = base.Add(r.SalarioBase)
		bonos = bonos.Add(r.TotalBonos)
		deducciones = deducciones.Add(r.TotalDeducciones)
		neto = neto.Add(r.TotalNeto)
	}

	pdf.SetFont("Helvetica", "B", 9)
	label := payrollColumns[0].width + payrollColumns[1].width + payrollColumns[2].width
	pdf.CellFormat(label, 7, fmt.Sprintf("Totales (%d empleados)", len(records)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(payrollColumns[3].width, 7, e.money.Format(base), "1", 0, "R", false, 0, "")
	pdf.CellFormat(payrollColumns[4].width, 7, e.money.Format(bonos), "1", 0, "R", false, 0, "")
	pdf.CellFormat(payrollColumns[5].width, 7, e.money.Format(deducciones), "1", 0, "R", false, 0, "")
	pdf.CellFormat(payrollColumns[6].width, 7, e.money.Format(neto), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf %s: %w", path, err)
	}
	return path, nil
}
