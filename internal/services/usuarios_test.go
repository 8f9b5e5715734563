package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nominapp/nominacli/internal/models"
)

type fakeUserAdminClient struct {
	usuarios []models.Usuario
	err      error

	LastToggleID int64
}

func (f *fakeUserAdminClient) ListUsuarios(ctx context.Context) ([]models.Usuario, error) {
	return f.usuarios, f.err
}

func (f *fakeUserAdminClient) ToggleUsuario(ctx context.Context, id int64) error {
	f.LastToggleID = id
	return f.err
}

func TestUsuarios(t *testing.T) {
	client := &fakeUserAdminClient{usuarios: []models.Usuario{
		{ID: 1, Nombre: "Ana", Rol: models.RoleAdmin, Activo: true},
	}}
	svc := NewUserAdminService(client)

	list, err := svc.Usuarios(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.ErrorIs(t, svc.ToggleUsuario(context.Background(), 0), ErrValidation)
	require.NoError(t, svc.ToggleUsuario(context.Background(), 4))
	require.Equal(t, int64(4), client.LastToggleID)
}
