package port

import (
	"context"

	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
)

// ProductoRepository puerto de persistencia de productos
type ProductoRepository interface {
	Crear(ctx context.Context, producto *entity.Producto) error
	Actualizar(ctx context.Context, producto *entity.Producto) error
	Eliminar(ctx context.Context, id int) error
	// Matching retorna los productos que cumplen el criteria junto con el
	// total sin paginar; con criteria vacío retorna todos por nombre
	Matching(ctx context.Context, crit criteria.Criteria) ([]*entity.Producto, int, error)
	ObtenerPorID(ctx context.Context, id int) (*entity.Producto, error)
	BuscarPorNombreOBarcode(ctx context.Context, termino string) ([]*entity.Producto, error)
	BuscarPorBarcode(ctx context.Context, barcode string) (*entity.Producto, error)
	PorCategoria(ctx context.Context, idCategoria int) ([]*entity.Producto, error)
	StockBajo(ctx context.Context, minimo int) ([]*entity.Producto, error)
	MayorStock(ctx context.Context) (*entity.Producto, error)
	// ActualizarStock suma delta al stock (negativo descuenta); con delta
	// negativo la fila solo se afecta si queda stock suficiente
	ActualizarStock(ctx context.Context, idProducto int, delta int) error
	ActualizarDescuentoDirecto(ctx context.Context, idProducto int, descuento float64) error
}

// CategoriaRepository puerto de persistencia de categorías
type CategoriaRepository interface {
	Crear(ctx context.Context, categoria *entity.Categoria) error
	Actualizar(ctx context.Context, categoria *entity.Categoria) error
	// Eliminar falla con ErrCategoriaConProductos si hay productos que la referencian
	Eliminar(ctx context.Context, id int) error
	ObtenerTodas(ctx context.Context) ([]*entity.Categoria, error)
	ObtenerPorID(ctx context.Context, id int) (*entity.Categoria, error)
}
