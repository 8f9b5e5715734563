package models

import "github.com/shopspring/decimal"

// PayrollRecord is one employee's computed pay for one period, as returned by
// GET /nominas. The backend computes TotalNeto; the client never recomputes
// it, only displays and sums it.
type PayrollRecord struct {
	IDEmpleado       int64           `json:"idEmpleado"`
	Empleado         string          `json:"empleado"`
	Departamento     string          `json:"departamento"`
	Puesto           string          `json:"puesto"`
	Periodo          string          `json:"periodo"`
	FechaInicio      string          `json:"fechaInicio"`
	FechaFin         string          `json:"fechaFin"`
	SalarioBase      decimal.Decimal `json:"salarioBase"`
	TotalBonos       decimal.Decimal `json:"totalBonos"`
	TotalDeducciones decimal.Decimal `json:"totalDeducciones"`
	TotalNeto        decimal.Decimal `json:"totalNeto"`
	Estado           string          `json:"estado"`
}

// NetConsistent reports whether TotalNeto matches
// SalarioBase + TotalBonos - TotalDeducciones. Used by tests over fixture
// data; production code trusts the backend value.
func (r PayrollRecord) NetConsistent() bool {
	return r.SalarioBase.Add(r.TotalBonos).Sub(r.TotalDeducciones).Equal(r.TotalNeto)
}

// GenerarNominaRequest is the body for POST /nominas/generar.
type GenerarNominaRequest struct {
	Periodo     string `json:"periodo"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
}
