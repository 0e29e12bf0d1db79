package repository

// WritePolicy define qué hace el primitivo de guardado cuando la clave natural ya existe.
type WritePolicy int

const (
	// CreateIfAbsent inserta sólo si no existe; el registro existente no se modifica.
	CreateIfAbsent WritePolicy = iota
	// Upsert inserta o sobrescribe los campos declarados por la entidad.
	Upsert
)

func (p WritePolicy) String() string {
	switch p {
	case CreateIfAbsent:
		return "create-if-absent"
	case Upsert:
		return "upsert"
	default:
		return "unknown"
	}
}
