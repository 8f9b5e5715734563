package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Fixture records mirror what the backend computes for a payroll run. The
// client trusts TotalNeto, so the fixtures themselves must satisfy
// neto = base + bonos - deducciones.
func TestPayrollFixtures_NetConsistent(t *testing.T) {
	fixtures := []PayrollRecord{
		{
			Empleado: "Ana Solis", Periodo: "Enero 2025",
			SalarioBase: dec("12000.00"), TotalBonos: dec("1500.50"),
			TotalDeducciones: dec("2200.25"), TotalNeto: dec("11300.25"),
		},
		{
			Empleado: "Luis Rojas", Periodo: "Enero 2025",
			SalarioBase: dec("9800.00"), TotalBonos: dec("0"),
			TotalDeducciones: dec("1470.00"), TotalNeto: dec("8330.00"),
		},
		{
			Empleado: "Marta Diaz", Periodo: "Febrero 2025",
			SalarioBase: dec("15000.00"), TotalBonos: dec("750.00"),
			TotalDeducciones: dec("3000.00"), TotalNeto: dec("12750.00"),
		},
	}

	for _, r := range fixtures {
		require.True(t, r.NetConsistent(), "record %s/%s", r.Empleado, r.Periodo)
	}
}

func TestNetConsistent_DetectsMismatch(t *testing.T) {
	r := PayrollRecord{
		SalarioBase: dec("100"), TotalBonos: dec("10"),
		TotalDeducciones: dec("5"), TotalNeto: dec("104.99"),
	}
	require.False(t, r.NetConsistent())
}
