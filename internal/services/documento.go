package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nominapp/nominacli/internal/models"
)

// MaxUploadSize caps document uploads at 10 MiB, matching the backend limit.
const MaxUploadSize = 10 << 20

// DocumentClient is the slice of the backend client the document service needs.
type DocumentClient interface {
	ListDocumentos(ctx context.Context, idEmpleado int64) ([]models.Documento, error)
	ListTiposDocumento(ctx context.Context) ([]models.TipoDocumento, error)
	UploadDocumento(ctx context.Context, up models.DocumentoUpload) error
}

// DocumentService lists and uploads typed employee documents. Uploads are
// validated locally so an incomplete form never reaches the network.
type DocumentService interface {
	Documentos(ctx context.Context, idEmpleado int64) ([]models.Documento, error)
	Tipos(ctx context.Context) ([]models.TipoDocumento, error)
	Upload(ctx context.Context, up models.DocumentoUpload) error
}

type documentService struct {
	client DocumentClient
}

func NewDocumentService(client DocumentClient) DocumentService {
	return &documentService{client: client}
}

func (s *documentService) Documentos(ctx context.Context, idEmpleado int64) ([]models.Documento, error) {
	if idEmpleado <= 0 {
		return nil, fmt.Errorf("%w: idEmpleado is required", ErrValidation)
	}
	list, err := s.client.ListDocumentos(ctx, idEmpleado)
	if err != nil {
		return nil, fmt.Errorf("list documentos error: %w", err)
	}
	return list, nil
}

func (s *documentService) Tipos(ctx context.Context) ([]models.TipoDocumento, error) {
	list, err := s.client.ListTiposDocumento(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tipos documento error: %w", err)
	}
	return list, nil
}

func (s *documentService) Upload(ctx context.Context, up models.DocumentoUpload) error {
	if len(up.Contenido) == 0 {
		return fmt.Errorf("%w: file is empty", ErrValidation)
	}
	if len(up.Contenido) > MaxUploadSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, MaxUploadSize)
	}
	if up.IDEmpleado <= 0 {
		return fmt.Errorf("%w: idEmpleado is required", ErrValidation)
	}
	if up.IDTipoDocumento <= 0 {
		return fmt.Errorf("%w: idTipoDocumento is required", ErrValidation)
	}
	if strings.TrimSpace(up.NombreArchivo) == "" {
		return fmt.Errorf("%w: nombreArchivo is required", ErrValidation)
	}
	if up.UsuarioEjecutorID <= 0 || !up.RolEjecutor.Valid() {
		return fmt.Errorf("%w: executing user is required", ErrValidation)
	}

	if err := s.client.UploadDocumento(ctx, up); err != nil {
		return fmt.Errorf("upload documento error: %w", err)
	}
	return nil
}
