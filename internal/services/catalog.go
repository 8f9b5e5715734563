package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nominapp/nominacli/internal/models"
)

// CatalogClient is the slice of the backend client the catalog service needs.
type CatalogClient interface {
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
}

// CatalogService maintains the three master catalogs: employees, departments
// and positions. Records are never deleted, only toggled active/inactive.
type CatalogService interface {
	Empleados(ctx context.Context) ([]models.Empleado, error)
	SaveEmpleado(ctx context.Context, e models.Empleado) (*models.Empleado, error)
	ToggleEmpleado(ctx context.Context, id int64) error

	Departamentos(ctx context.Context) ([]models.Departamento, error)
	SaveDepartamento(ctx context.Context, d models.Departamento) (*models.Departamento, error)
	ToggleDepartamento(ctx context.Context, id int64) error

	Puestos(ctx context.Context) ([]models.Puesto, error)
	SavePuesto(ctx context.Context, p models.Puesto) (*models.Puesto, error)
	TogglePuesto(ctx context.Context, id int64) error
}

type catalogService struct {
	client CatalogClient
}

// NewCatalogService constructs a CatalogService bound to the given client.
func NewCatalogService(client CatalogClient) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) Empleados(ctx context.Context) ([]models.Empleado, error) {
	list, err := s.client.ListEmpleados(ctx)
	if err != nil {
		return nil, fmt.Errorf("list empleados error: %w", err)
	}
	return list, nil
}

// SaveEmpleado creates when ID is zero and updates otherwise. On update the
// returned record is the input; the backend does not echo a body.
func (s *catalogService) SaveEmpleado(ctx context.Context, e models.Empleado) (*models.Empleado, error) {
	if strings.TrimSpace(e.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	if strings.TrimSpace(e.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if e.Salario.IsNegative() {
		return nil, fmt.Errorf("%w: salario cannot be negative", ErrValidation)
	}

	if e.ID == 0 {
		created, err := s.client.CreateEmpleado(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("create empleado error: %w", err)
		}
		return created, nil
	}
	if err := s.client.UpdateEmpleado(ctx, e); err != nil {
		return nil, fmt.Errorf("update empleado error: %w", err)
	}
	return &e, nil
}

func (s *catalogService) ToggleEmpleado(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := s.client.ToggleEmpleado(ctx, id); err != nil {
		return fmt.Errorf("toggle empleado error: %w", err)
	}
	return nil
}

func (s *catalogService) Departamentos(ctx context.Context) ([]models.Departamento, error) {
	list, err := s.client.ListDepartamentos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departamentos error: %w", err)
	}
	return list, nil
}

func (s *catalogService) SaveDepartamento(ctx context.Context, d models.Departamento) (*models.Departamento, error) {
	if strings.TrimSpace(d.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre is required", ErrValidation)
	}

	if d.ID == 0 {
		created, err := s.client.CreateDepartamento(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("create departamento error: %w", err)
		}
		return created, nil
	}
	if err := s.client.UpdateDepartamento(ctx, d); err != nil {
		return nil, fmt.Errorf("update departamento error: %w", err)
	}
	return &d, nil
}

func (s *catalogService) ToggleDepartamento(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := s.client.ToggleDepartamento(ctx, id); err != nil {
		return fmt.Errorf("toggle departamento error: %w", err)
	}
	return nil
}

func (s *catalogService) Puestos(ctx context.Context) ([]models.Puesto, error) {
	list, err := s.client.ListPuestos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list puestos error: %w", err)
	}
	return list, nil
}

func (s *catalogService) SavePuesto(ctx context.Context, p models.Puesto) (*models.Puesto, error) {
	if strings.TrimSpace(p.Nombre) == "" {
		return nil, fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	if p.SalarioBase.IsNegative() {
		return nil, fmt.Errorf("%w: salarioBase cannot be negative", ErrValidation)
	}

	if p.ID == 0 {
		created, err := s.client.CreatePuesto(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("create puesto error: %w", err)
		}
		return created, nil
	}
	if err := s.client.UpdatePuesto(ctx, p); err != nil {
		return nil, fmt.Errorf("update puesto error: %w", err)
	}
	return &p, nil
}

func (s *catalogService) TogglePuesto(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := s.client.TogglePuesto(ctx, id); err != nil {
		return fmt.Errorf("toggle puesto error: %w", err)
	}
	return nil
}
