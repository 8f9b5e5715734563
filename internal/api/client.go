// Package api implements the HTTP client for the Nomina backend. It owns the
// wire concerns: bearer token attachment, request IDs, envelope
// normalization, error mapping, and the global 401 hook.
package api

import (
	"context"

	"github.com/nominapp/nominacli/internal/models"
)

// Client is the full surface of the Nomina backend as consumed by this
// application. Implementations must honor context cancellation on every call.
//
// Token lifecycle: the session gateway calls SetToken after login/restore and
// SetToken("") on teardown. OnUnauthorized registers the hook fired when any
// authenticated call comes back 401.
type Client interface {
	SetToken(token string)
	OnUnauthorized(fn func())

	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Perfil(ctx context.Context) (*models.User, error)

	ListNominas(ctx context.Context) ([]models.PayrollRecord, error)
	GenerarNomina(ctx context.Context, req models.GenerarNominaRequest) error
	GetVoucher(ctx context.Context, idEmpleado int64, periodo string) (*models.Voucher, error)

	ListEmpleados(ctx context.Context) ([]models.Empleado, error)
	CreateEmpleado(ctx context.Context, e models.Empleado) (*models.Empleado, error)
	UpdateEmpleado(ctx context.Context, e models.Empleado) error
	ToggleEmpleado(ctx context.Context, id int64) error

	ListDepartamentos(ctx context.Context) ([]models.Departamento, error)
	CreateDepartamento(ctx context.Context, d models.Departamento) (*models.Departamento, error)
	UpdateDepartamento(ctx context.Context, d models.Departamento) error
	ToggleDepartamento(ctx context.Context, id int64) error

	ListPuestos(ctx context.Context) ([]models.Puesto, error)
	CreatePuesto(ctx context.Context, p models.Puesto) (*models.Puesto, error)
	UpdatePuesto(ctx context.Context, p models.Puesto) error
	TogglePuesto(ctx context.Context, id int64) error

	ListUsuarios(ctx context.Context) ([]models.Usuario, error)
	ToggleUsuario(ctx context.Context, id int64) error

	ListDocumentos(ctx context.Context, idEmpleado int64) ([]models.Documento, error)
	ListTiposDocumento(ctx context.Context) ([]models.TipoDocumento, error)
	UploadDocumento(ctx context.Context, up models.DocumentoUpload) error
}
