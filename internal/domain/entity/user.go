package entity

import "time"

// GuestUsername usuario invitado que se crea sin contraseña utilizable.
const GuestUsername = "guest"

// User usuario del sistema (clave natural: Username).
type User struct {
	ID           string
	Username     string
	FullName     string
	RoleID       string
	Role         RoleName
	PasswordHash string // bcrypt; vacío = contraseña no utilizable
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasUsablePassword indica si el usuario puede autenticarse con contraseña.
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}
