package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/port"

	"golang.org/x/crypto/bcrypt"
)

// UsuarioRequest DTO para crear o actualizar usuarios
type UsuarioRequest struct {
	NombreUsuario string `json:"nombre_usuario" binding:"required"`
	Contrasena    string `json:"contrasena"`
	Rol           string `json:"rol" binding:"required"`
}

// UsuarioUseCase casos de uso de gestión de usuarios
type UsuarioUseCase struct {
	usuarioRepo port.UsuarioRepository
}

// NewUsuarioUseCase crea una nueva instancia del caso de uso
func NewUsuarioUseCase(usuarioRepo port.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo}
}

// Crear registra un usuario nuevo con la contraseña hasheada con bcrypt
func (uc *UsuarioUseCase) Crear(ctx context.Context, req *UsuarioRequest) (*entity.Usuario, error) {
	if len(req.Contrasena) < 8 {
		return nil, entity.ErrContrasenaCorta
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &entity.Usuario{
		NombreUsuario: req.NombreUsuario,
		Contrasena:    string(hash),
		Rol:           entity.Rol(req.Rol),
	}

	if err := usuario.Validar(); err != nil {
		return nil, err
	}

	if err := uc.usuarioRepo.Crear(ctx, usuario); err != nil {
		return nil, err
	}

	log.Printf("✅ Usuario creado: %d - %s (%s)", usuario.IdUsuario, usuario.NombreUsuario, usuario.Rol)
	return usuario, nil
}

// Actualizar modifica un usuario. Con contraseña vacía se conserva el hash
// actual.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, id int, req *UsuarioRequest) (*entity.Usuario, error) {
	actual, err := uc.usuarioRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	contrasena := actual.Contrasena
	if req.Contrasena != "" {
		if len(req.Contrasena) < 8 {
			return nil, entity.ErrContrasenaCorta
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		contrasena = string(hash)
	}

	usuario := &entity.Usuario{
		IdUsuario:     id,
		NombreUsuario: req.NombreUsuario,
		Contrasena:    contrasena,
		Rol:           entity.Rol(req.Rol),
	}

	if err := usuario.Validar(); err != nil {
		return nil, err
	}

	if err := uc.usuarioRepo.Actualizar(ctx, usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// Eliminar borra un usuario
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, id int) error {
	if err := uc.usuarioRepo.Eliminar(ctx, id); err != nil {
		return err
	}
	log.Printf("🗑️  Usuario eliminado: %d", id)
	return nil
}

// Listar retorna todos los usuarios
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	return uc.usuarioRepo.ObtenerTodos(ctx)
}

// ObtenerPorID retorna un usuario por su id
func (uc *UsuarioUseCase) ObtenerPorID(ctx context.Context, id int) (*entity.Usuario, error) {
	return uc.usuarioRepo.ObtenerPorID(ctx, id)
}

// Autenticar verifica las credenciales con comparación bcrypt. Usuario
// inexistente y contraseña incorrecta responden el mismo error.
func (uc *UsuarioUseCase) Autenticar(ctx context.Context, nombreUsuario, contrasena string) (*entity.Usuario, error) {
	usuario, err := uc.usuarioRepo.ObtenerPorNombreUsuario(ctx, nombreUsuario)
	if err != nil {
		if errors.Is(err, entity.ErrUsuarioNoEncontrado) {
			return nil, entity.ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(contrasena)); err != nil {
		return nil, entity.ErrCredencialesInvalidas
	}

	return usuario, nil
}
