package domain

import (
	"errors"
	"time"
)

// Role is the canonical permission level catalog. The numeric ids are part
// of the public API contract (id_rol) and must not be renumbered.
type Role int

const (
	RoleCliente       Role = 1
	RoleCajero        Role = 2
	RoleAdministrador Role = 3
	RoleCocina        Role = 4
	RoleMesero        Role = 5
)

// RoleInfo is the read-only catalog entry returned by GET /api/auth/roles.
type RoleInfo struct {
	ID          Role   `json:"id_rol"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// roleCatalog is the single source of truth for role ids, names and
// descriptions.
var roleCatalog = []RoleInfo{
	{ID: RoleCliente, Nombre: "Cliente", Descripcion: "Cliente del restaurante"},
	{ID: RoleCajero, Nombre: "Cajero", Descripcion: "Cobro y facturación"},
	{ID: RoleAdministrador, Nombre: "Administrador", Descripcion: "Acceso completo al sistema"},
	{ID: RoleCocina, Nombre: "Cocina", Descripcion: "Personal de cocina"},
	{ID: RoleMesero, Nombre: "Mesero", Descripcion: "Atención de mesas"},
}

// Roles returns a copy of the role catalog.
func Roles() []RoleInfo {
	out := make([]RoleInfo, len(roleCatalog))
	copy(out, roleCatalog)
	return out
}

// Valid reports whether r is one of the catalogued roles.
func (r Role) Valid() bool {
	return r >= RoleCliente && r <= RoleMesero
}

// Nombre returns the display name for the role, or "" for unknown ids.
func (r Role) Nombre() string {
	for _, ri := range roleCatalog {
		if ri.ID == r {
			return ri.Nombre
		}
	}
	return ""
}

var (
	ErrInvalidInput       = errors.New("datos de entrada inválidos")
	ErrUserExists         = errors.New("el usuario ya está registrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUserInactive       = errors.New("usuario inactivo")
	ErrInvalidUserData    = errors.New("datos de usuario inválidos")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrForbidden          = errors.New("no tienes permisos para realizar esta acción")
	ErrStoreUnavailable   = errors.New("error de conexión a la base de datos")
)

// User models a staff member or customer account. PasswordHash never leaves
// the credential store boundary: it is stripped by the auth service before
// any record is returned to a caller.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Email        string    `json:"email,omitempty"`
	Rol          Role      `json:"id_rol"`
	RolNombre    string    `json:"rol_nombre,omitempty"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"fecha_creacion"`
	UpdatedAt    time.Time `json:"-"`
}

// Public returns a copy safe to hand to API callers: no hash, role name
// resolved from the catalog.
func (u *User) Public() *User {
	clone := *u
	clone.PasswordHash = ""
	if clone.RolNombre == "" {
		clone.RolNombre = clone.Rol.Nombre()
	}
	return &clone
}
