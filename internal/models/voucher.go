package models

import "github.com/shopspring/decimal"

// VoucherLineKind distinguishes bonus and deduction line items.
type VoucherLineKind string

const (
	LineBono      VoucherLineKind = "bono"
	LineDeduccion VoucherLineKind = "deduccion"
)

// VoucherLine is one concept on a pay receipt.
type VoucherLine struct {
	Concepto string          `json:"concepto"`
	Tipo     VoucherLineKind `json:"tipo"`
	Monto    decimal.Decimal `json:"monto"`
}

// Voucher is a single employee's detailed pay breakdown for one period,
// fetched on demand for printable receipts. All totals come from the backend.
type Voucher struct {
	IDEmpleado       int64           `json:"idEmpleado"`
	Empleado         string          `json:"empleado"`
	Puesto           string          `json:"puesto"`
	Departamento     string          `json:"departamento"`
	Periodo          string          `json:"periodo"`
	FechaInicio      string          `json:"fechaInicio"`
	FechaFin         string          `json:"fechaFin"`
	SalarioBase      decimal.Decimal `json:"salarioBase"`
	TotalBonos       decimal.Decimal `json:"totalBonos"`
	TotalDeducciones decimal.Decimal `json:"totalDeducciones"`
	TotalNeto        decimal.Decimal `json:"totalNeto"`
	Lineas           []VoucherLine   `json:"lineas"`
}
