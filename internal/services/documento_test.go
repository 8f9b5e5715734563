package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nominapp/nominacli/internal/models"
)

type fakeDocumentClient struct {
	documentos []models.Documento
	tipos      []models.TipoDocumento
	err        error

	LastUpload models.DocumentoUpload
	LastID     int64
	Uploads    int
}

func (f *fakeDocumentClient) ListDocumentos(ctx context.Context, idEmpleado int64) ([]models.Documento, error) {
	f.LastID = idEmpleado
	return f.documentos, f.err
}

func (f *fakeDocumentClient) ListTiposDocumento(ctx context.Context) ([]models.TipoDocumento, error) {
	return f.tipos, f.err
}

func (f *fakeDocumentClient) UploadDocumento(ctx context.Context, up models.DocumentoUpload) error {
	f.Uploads++
	f.LastUpload = up
	return f.err
}

func validUpload() models.DocumentoUpload {
	return models.DocumentoUpload{
		Contenido:         []byte("%PDF-1.7 contrato"),
		IDEmpleado:        3,
		IDTipoDocumento:   1,
		NombreArchivo:     "contrato.pdf",
		UsuarioEjecutorID: 9,
		RolEjecutor:       models.RoleAdmin,
	}
}

func TestUpload_Valid(t *testing.T) {
	client := &fakeDocumentClient{}
	svc := NewDocumentService(client)

	require.NoError(t, svc.Upload(context.Background(), validUpload()))
	require.Equal(t, 1, client.Uploads)
	require.Equal(t, "contrato.pdf", client.LastUpload.NombreArchivo)
}

func TestUpload_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.DocumentoUpload)
	}{
		{"empty file", func(u *models.DocumentoUpload) { u.Contenido = nil }},
		{"oversized file", func(u *models.DocumentoUpload) { u.Contenido = make([]byte, MaxUploadSize+1) }},
		{"missing empleado", func(u *models.DocumentoUpload) { u.IDEmpleado = 0 }},
		{"missing tipo", func(u *models.DocumentoUpload) { u.IDTipoDocumento = 0 }},
		{"blank name", func(u *models.DocumentoUpload) { u.NombreArchivo = "   " }},
		{"missing executor", func(u *models.DocumentoUpload) { u.UsuarioEjecutorID = 0 }},
		{"invalid executor role", func(u *models.DocumentoUpload) { u.RolEjecutor = "Gerente" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeDocumentClient{}
			up := validUpload()
			tt.mutate(&up)

			err := NewDocumentService(client).Upload(context.Background(), up)
			require.ErrorIs(t, err, ErrValidation)
			require.Zero(t, client.Uploads, "invalid upload must not reach the network")
		})
	}
}

func TestDocumentos_RequiresEmpleado(t *testing.T) {
	client := &fakeDocumentClient{documentos: []models.Documento{{ID: 1, IDEmpleado: 3}}}
	svc := NewDocumentService(client)

	_, err := svc.Documentos(context.Background(), 0)
	require.ErrorIs(t, err, ErrValidation)

	docs, err := svc.Documentos(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, int64(3), client.LastID)
}
