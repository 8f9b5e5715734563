package services

import (
	"context"
	"fmt"

	"github.com/nominapp/nominacli/internal/models"
)

// UserAdminClient is the slice of the backend client for account management.
type UserAdminClient interface {
	ListUsuarios(ctx context.Context) ([]models.Usuario, error)
	ToggleUsuario(ctx context.Context, id int64) error
}

// UserAdminService lists application accounts and toggles their active flag.
// Admin-only; the route guard enforces that before any call lands here.
type UserAdminService interface {
	Usuarios(ctx context.Context) ([]models.Usuario, error)
	ToggleUsuario(ctx context.Context, id int64) error
}

type userAdminService struct {
	client UserAdminClient
}

func NewUserAdminService(client UserAdminClient) UserAdminService {
	return &userAdminService{client: client}
}

func (s *userAdminService) Usuarios(ctx context.Context) ([]models.Usuario, error) {
	list, err := s.client.ListUsuarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usuarios error: %w", err)
	}
	return list, nil
}

func (s *userAdminService) ToggleUsuario(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := s.client.ToggleUsuario(ctx, id); err != nil {
		return fmt.Errorf("toggle usuario error: %w", err)
	}
	return nil
}
