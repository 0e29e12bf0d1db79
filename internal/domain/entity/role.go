package entity

// RoleName etiqueta fija de rol.
type RoleName string

// Roles válidos. Se siembran antes de importar usuarios.
const (
	RoleClient  RoleName = "client"
	RoleManager RoleName = "manager"
	RoleAdmin   RoleName = "admin"
)

// SeedRoles orden de siembra de los roles.
var SeedRoles = []RoleName{RoleClient, RoleManager, RoleAdmin}

// DisplayName nombre legible del rol tal como aparece en las hojas.
func (r RoleName) DisplayName() string {
	switch r {
	case RoleClient:
		return "Авторизованный клиент"
	case RoleManager:
		return "Менеджер"
	case RoleAdmin:
		return "Администратор"
	default:
		return string(r)
	}
}

// Role fila de la tabla de roles.
type Role struct {
	ID   string
	Name RoleName
}
