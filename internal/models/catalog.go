package models

import "github.com/shopspring/decimal"

// Empleado is a row from GET /empleados.
type Empleado struct {
	ID           int64           `json:"id"`
	Nombre       string          `json:"nombre"`
	Email        string          `json:"email"`
	Departamento string          `json:"departamento"`
	Puesto       string          `json:"puesto"`
	Salario      decimal.Decimal `json:"salario"`
	Activo       bool            `json:"activo"`
}

// Departamento is a row from GET /departamentos.
type Departamento struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}

// Puesto is a row from GET /puestos.
type Puesto struct {
	ID           int64           `json:"id"`
	Nombre       string          `json:"nombre"`
	Departamento string          `json:"departamento"`
	SalarioBase  decimal.Decimal `json:"salarioBase"`
	Activo       bool            `json:"activo"`
}

// Usuario is an application account row from GET /usuarios (Admin section).
type Usuario struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    Role   `json:"rol"`
	Activo bool   `json:"activo"`
}
