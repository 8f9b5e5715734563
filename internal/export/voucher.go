package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/nominapp/nominacli/internal/models"
)

// VoucherPDF writes one employee's pay receipt for a period. All amounts,
// including the totals block, come straight from the voucher; nothing is
// recomputed here. Deduction lines are shown negative and shaded.
func (e *Exporter) VoucherPDF(v *models.Voucher) (string, error) {
	path, err := e.targetPath(VoucherFileName(v.Empleado, v.Periodo))
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Voucher %s %s", v.Empleado, v.Periodo), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, e.org, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Recibo de nomina", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	header := [][2]string{
		{"Empleado", v.Empleado},
		{"Puesto", v.Puesto},
		{"Departamento", v.Departamento},
		{"Periodo", fmt.Sprintf("%s (%s a %s)", v.Periodo, v.FechaInicio, v.FechaFin)},
	}
	for _, kv := range header {
		pdf.CellFormat(35, 6, kv[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, kv[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(110, 7, "Concepto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Tipo", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Monto", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range v.Lineas {
		amount := e.money.Format(line.Monto)
		fill := false
		if line.Tipo == models.LineDeduccion {
			amount = "-" + amount
			pdf.SetFillColor(245, 235, 235)
			fill = true
		}
		pdf.CellFormat(110, 6, line.Concepto, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(30, 6, string(line.Tipo), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(40, 6, amount, "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	totals := [][2]string{
		{"Salario base", e.money.Format(v.SalarioBase)},
		{"Total bonos", e.money.Format(v.TotalBonos)},
		{"Total deducciones", e.money.Format(v.TotalDeducciones)},
		{"Neto a pagar", e.money.Format(v.TotalNeto)},
	}
	for _, kv := range totals {
		pdf.CellFormat(140, 6, kv[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, kv[1], "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf %s: %w", path, err)
	}
	return path, nil
}
