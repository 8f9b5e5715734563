package export

import (
	"fmt"
	"strings"
	"unicode"
)

// sanitizeLabel keeps letters, digits and hyphens; every other rune (spaces,
// slashes, anything path-hostile) becomes an underscore, so a period label or
// employee name is always safe as a filename component.
func sanitizeLabel(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ReportFileName is the deterministic name for a payroll report export,
// e.g. Nomina_Enero_2026.pdf.
func ReportFileName(periodo, ext string) string {
	return fmt.Sprintf("Nomina_%s.%s", sanitizeLabel(periodo), ext)
}

// VoucherFileName is the deterministic name for a pay voucher PDF.
func VoucherFileName(empleado, periodo string) string {
	return fmt.Sprintf("Voucher_%s_%s.pdf", sanitizeLabel(empleado), sanitizeLabel(periodo))
}
