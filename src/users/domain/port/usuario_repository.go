package port

import (
	"context"

	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios
type UsuarioRepository interface {
	Crear(ctx context.Context, usuario *entity.Usuario) error
	Actualizar(ctx context.Context, usuario *entity.Usuario) error
	Eliminar(ctx context.Context, id int) error
	ObtenerTodos(ctx context.Context) ([]*entity.Usuario, error)
	ObtenerPorID(ctx context.Context, id int) (*entity.Usuario, error)
	ObtenerPorNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error)
}
