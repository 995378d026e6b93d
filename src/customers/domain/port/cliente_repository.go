package port

import (
	"context"

	"github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/entity"
)

// ClienteRepository puerto de persistencia de clientes
type ClienteRepository interface {
	Crear(ctx context.Context, cliente *entity.Cliente) error
	Actualizar(ctx context.Context, cliente *entity.Cliente) error
	Eliminar(ctx context.Context, id int) error
	ObtenerTodos(ctx context.Context) ([]*entity.Cliente, error)
	ObtenerPorID(ctx context.Context, id int) (*entity.Cliente, error)
	BuscarPorNombreOCiudad(ctx context.Context, termino string) ([]*entity.Cliente, error)
}
