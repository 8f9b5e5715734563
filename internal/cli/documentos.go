package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/nominapp/nominacli/internal/api"
	"github.com/nominapp/nominacli/internal/guard"
	"github.com/nominapp/nominacli/internal/models"
)

// readFileFn is a test seam for reading the file to upload.
var readFileFn = os.ReadFile

// Documentos lists the documents stored for one employee.
// Usage: documentos <idEmpleado>
func (a *App) Documentos(ctx context.Context, args []string) error {
	return a.guarded(ctx, guard.SectionDocumentos, func(ctx context.Context) error {
		if len(args) < 1 {
			printlnFn("Uso: documentos <idEmpleado>")
			return nil
		}
		id, ok := parseID(args[0])
		if !ok {
			return nil
		}

		docs, err := a.docs.Documentos(ctx, id)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			printlnFn("El empleado no tiene documentos.")
			return nil
		}

		for _, d := range docs {
			printlnFn(fmt.Sprintf("%4d  tipo %-3d  %-40s %s", d.ID, d.IDTipoDocumento, d.NombreArchivo, d.FechaSubida))
		}
		return nil
	})
}

// Subir uploads a document for an employee. The document type is chosen from
// the typed catalog and the executing user is taken from the session.
func (a *App) Subir(ctx context.Context) error {
	return a.guarded(ctx, guard.SectionDocumentos, func(ctx context.Context) error {
		u := a.gateway.Session().Current()

		rawID, err := getSimpleText(a.reader, "Id del empleado", os.Stdout)
		if err != nil {
			return err
		}
		idEmpleado, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || idEmpleado <= 0 {
			printlnFn("Identificador invalido:", rawID)
			return nil
		}

		tipos, err := a.docs.Tipos(ctx)
		if err != nil {
			return err
		}
		printlnFn("Tipos de documento:")
		for _, tp := range tipos {
			printlnFn(fmt.Sprintf("  %d  %s", tp.ID, tp.Nombre))
		}
		rawTipo, err := getSimpleText(a.reader, "Id del tipo", os.Stdout)
		if err != nil {
			return err
		}
		idTipo, err := strconv.ParseInt(rawTipo, 10, 64)
		if err != nil || idTipo <= 0 {
			printlnFn("Tipo invalido:", rawTipo)
			return nil
		}

		path, err := getSimpleText(a.reader, "Ruta del archivo", os.Stdout)
		if err != nil {
			return err
		}
		content, err := readFileFn(path)
		if err != nil {
			printlnFn("No se pudo leer el archivo:", err.Error())
			return nil
		}

		nombre, err := getSimpleText(a.reader, "Nombre para guardar (vacio usa el nombre del archivo)", os.Stdout)
		if err != nil {
			return err
		}
		if nombre == "" {
			nombre = path
		}

		ok, err := getConfirm(a.reader, fmt.Sprintf("Subir %q para el empleado %d?", nombre, idEmpleado), os.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			printlnFn("Operacion cancelada.")
			return nil
		}

		err = a.docs.Upload(ctx, models.DocumentoUpload{
			Contenido:         content,
			IDEmpleado:        idEmpleado,
			IDTipoDocumento:   idTipo,
			NombreArchivo:     nombre,
			UsuarioEjecutorID: u.ID,
			RolEjecutor:       u.Rol,
		})
		if err != nil {
			var be *api.BusinessError
			if errors.As(err, &be) {
				printlnFn(be.Message)
				return nil
			}
			return err
		}

		printlnFn("Documento subido.")
		return nil
	})
}
