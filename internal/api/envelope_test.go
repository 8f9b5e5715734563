package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nominapp/nominacli/internal/models"
)

func TestUnwrap_BareArray(t *testing.T) {
	raw := []byte(`[{"id":1,"nombre":"Ventas","descripcion":"","activo":true}]`)

	var out []models.Departamento
	require.NoError(t, unwrap(raw, &out))
	require.Len(t, out, 1)
	require.Equal(t, "Ventas", out[0].Nombre)
}

func TestUnwrap_Envelope(t *testing.T) {
	raw := []byte(`{"success":true,"message":"ok","data":[{"id":2,"nombre":"RRHH","descripcion":"","activo":true}]}`)

	var out []models.Departamento
	require.NoError(t, unwrap(raw, &out))
	require.Len(t, out, 1)
	require.Equal(t, "RRHH", out[0].Nombre)
}

func TestUnwrap_EnvelopeNullData(t *testing.T) {
	raw := []byte(`{"success":true,"message":"sin registros","data":null}`)

	var out []models.Departamento
	require.NoError(t, unwrap(raw, &out))
	require.Empty(t, out)
}

func TestUnwrap_BareObject(t *testing.T) {
	raw := []byte(`{"id":1,"nombre":"Ana","email":"a@b.c","rol":"HR","token":"abc"}`)

	var u models.User
	require.NoError(t, unwrap(raw, &u))
	require.Equal(t, models.RoleHR, u.Rol)
}

func TestUnwrap_NeitherShapeFailsLoudly(t *testing.T) {
	var out []models.Departamento

	err := unwrap([]byte(`"just a string"`), &out)
	require.ErrorIs(t, err, ErrUnexpectedShape)

	err = unwrap([]byte(``), &out)
	require.ErrorIs(t, err, ErrUnexpectedShape)

	err = unwrap([]byte(`{"unrelated":"object"}`), &out)
	require.ErrorIs(t, err, ErrUnexpectedShape)
}
