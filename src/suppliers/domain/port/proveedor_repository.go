package port

import (
	"context"

	"github.com/SamuelBrambila12/MisTrapitos/src/suppliers/domain/entity"
)

// ProveedorRepository puerto de persistencia de proveedores
type ProveedorRepository interface {
	Crear(ctx context.Context, proveedor *entity.Proveedor) error
	Actualizar(ctx context.Context, proveedor *entity.Proveedor) error
	Eliminar(ctx context.Context, id int) error
	ObtenerTodos(ctx context.Context) ([]*entity.Proveedor, error)
	ObtenerPorID(ctx context.Context, id int) (*entity.Proveedor, error)
	BuscarPorNombre(ctx context.Context, termino string) ([]*entity.Proveedor, error)
}
