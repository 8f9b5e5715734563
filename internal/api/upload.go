package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/nominapp/nominacli/internal/models"
)

// UploadDocumento sends an employee document as multipart form data to
// POST /documentos. The audit fields (usuarioEjecutorId, rolEjecutor) travel
// alongside the file so the backend can record who performed the upload.
func (c *HTTPClient) UploadDocumento(ctx context.Context, up models.DocumentoUpload) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", up.NombreArchivo)
	if err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(up.Contenido); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}

	fields := map[string]string{
		"idEmpleado":        strconv.FormatInt(up.IDEmpleado, 10),
		"idTipoDocumento":   strconv.FormatInt(up.IDTipoDocumento, 10),
		"nombreArchivo":     up.NombreArchivo,
		"usuarioEjecutorId": strconv.FormatInt(up.UsuarioEjecutorID, 10),
		"rolEjecutor":       string(up.RolEjecutor),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documentos", &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, err = c.send(req, "/documentos")
	return err
}
