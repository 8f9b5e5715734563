package guard

import "github.com/nominapp/nominacli/internal/models"

// Section is a navigable area of the application.
type Section string

const (
	SectionEmpleados     Section = "Empleados"
	SectionDepartamentos Section = "Departamentos"
	SectionPuestos       Section = "Puestos"
	SectionNomina        Section = "Nomina"
	SectionReportes      Section = "Reportes"
	SectionUsuarios      Section = "Usuarios"
	SectionDocumentos    Section = "Documentos"
)

// allSections fixes the presentation order. Menus are always a subsequence
// of this list.
var allSections = []Section{
	SectionEmpleados,
	SectionDepartamentos,
	SectionPuestos,
	SectionNomina,
	SectionReportes,
	SectionUsuarios,
	SectionDocumentos,
}

// grants maps each role to the sections it may enter.
var grants = map[models.Role]map[Section]bool{
	models.RoleAdmin: {
		SectionEmpleados: true, SectionDepartamentos: true, SectionPuestos: true,
		SectionNomina: true, SectionReportes: true, SectionUsuarios: true,
		SectionDocumentos: true,
	},
	models.RoleHR: {
		SectionEmpleados: true, SectionDepartamentos: true, SectionPuestos: true,
		SectionNomina: true, SectionReportes: true,
	},
	models.RoleEmpleado: {
		SectionDocumentos: true,
	},
}

// Menu returns the sections visible to u, in fixed presentation order.
// Nil for an unauthenticated or unknown-role user. Pure function of the
// role; recompute whenever the current user changes.
func Menu(u *models.User) []Section {
	if u == nil {
		return nil
	}
	granted := grants[u.Rol]
	if len(granted) == 0 {
		return nil
	}

	visible := make([]Section, 0, len(granted))
	for _, s := range allSections {
		if granted[s] {
			visible = append(visible, s)
		}
	}
	return visible
}

// Allowed reports whether role rol may enter section s.
func Allowed(rol models.Role, s Section) bool {
	return grants[rol][s]
}
