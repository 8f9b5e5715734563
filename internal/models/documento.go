package models

// TipoDocumento is an entry of the typed document catalog.
type TipoDocumento struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Documento is a stored employee document, from GET /documentos?idEmpleado=.
type Documento struct {
	ID              int64  `json:"id"`
	IDEmpleado      int64  `json:"idEmpleado"`
	IDTipoDocumento int64  `json:"idTipoDocumento"`
	NombreArchivo   string `json:"nombreArchivo"`
	FechaSubida     string `json:"fechaSubida"`
}

// DocumentoUpload is the multipart payload for POST /documentos.
// Contenido is the raw file body; the remaining fields become form values.
type DocumentoUpload struct {
	Contenido         []byte
	IDEmpleado        int64
	IDTipoDocumento   int64
	NombreArchivo     string
	UsuarioEjecutorID int64
	RolEjecutor       Role
}
