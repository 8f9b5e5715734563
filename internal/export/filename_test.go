package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportFileName(t *testing.T) {
	require.Equal(t, "Nomina_Enero_2026.pdf", ReportFileName("Enero 2026", "pdf"))
	require.Equal(t, "Nomina_Q1_2026.xlsx", ReportFileName("Q1/2026", "xlsx"))
	require.Equal(t, "Nomina_Quincena_1-15.pdf", ReportFileName("Quincena 1-15", "pdf"))
}

func TestVoucherFileName(t *testing.T) {
	require.Equal(t, "Voucher_Ana_Solis_Enero.pdf", VoucherFileName("Ana Solis", "Enero"))
	require.Equal(t, "Voucher_Jose_Nunez_Febrero_2026.pdf", VoucherFileName("Jose Nunez", "Febrero 2026"))
}

func TestSanitizeLabel_PathHostileRunes(t *testing.T) {
	require.Equal(t, "a_b_c_d_e", sanitizeLabel(`a/b\c:d*e`))
	require.Equal(t, "__", sanitizeLabel(".."))
}
