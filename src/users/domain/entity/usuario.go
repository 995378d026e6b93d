package entity

import (
	"errors"
	"strings"
)

// Errores de dominio del módulo de usuarios
var (
	ErrNombreUsuarioRequerido = errors.New("el nombre de usuario es requerido")
	ErrContrasenaCorta        = errors.New("la contraseña debe tener al menos 8 caracteres")
	ErrRolInvalido            = errors.New("rol inválido")
	ErrUsuarioNoEncontrado    = errors.New("usuario no encontrado")
	ErrUsuarioDuplicado       = errors.New("ya existe un usuario con ese nombre")
	ErrCredencialesInvalidas  = errors.New("credenciales inválidas")
)

// Rol nivel de acceso del usuario
type Rol string

const (
	RolAdministrador Rol = "Administrador"
	RolVendedor      Rol = "Vendedor"
)

// Valido verifica que el rol sea uno de los conocidos
func (r Rol) Valido() bool {
	return r == RolAdministrador || r == RolVendedor
}

// Usuario cuenta de acceso al sistema. Contrasena guarda el hash bcrypt,
// nunca el texto plano.
type Usuario struct {
	IdUsuario     int    `json:"id_usuario"`
	NombreUsuario string `json:"nombre_usuario"`
	Contrasena    string `json:"-"`
	Rol           Rol    `json:"rol"`
}

// Validar verifica las reglas de negocio del usuario
func (u *Usuario) Validar() error {
	if strings.TrimSpace(u.NombreUsuario) == "" {
		return ErrNombreUsuarioRequerido
	}
	if !u.Rol.Valido() {
		return ErrRolInvalido
	}
	return nil
}
