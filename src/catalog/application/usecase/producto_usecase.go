package usecase

import (
	"context"
	"log"

	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/application/response"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"

	"github.com/shopspring/decimal"
)

// ProductoUseCase casos de uso de gestión de productos
type ProductoUseCase struct {
	productoRepo port.ProductoRepository
}

// NewProductoUseCase crea una nueva instancia del caso de uso
func NewProductoUseCase(productoRepo port.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// Crear registra un producto nuevo. El descuento efectivo inicial es el
// descuento directo: un producto recién creado no tiene promociones.
func (uc *ProductoUseCase) Crear(ctx context.Context, req *request.ProductoRequest) (*response.ProductoResponse, error) {
	producto := productoDesdeRequest(req)
	producto.Descuento = producto.DescuentoDirecto

	if err := producto.Validar(); err != nil {
		return nil, err
	}

	if err := uc.productoRepo.Crear(ctx, producto); err != nil {
		return nil, err
	}

	log.Printf("✅ Producto creado: %d - %s", producto.IdProducto, producto.Nombre)

	resp := response.FromProducto(producto)
	return &resp, nil
}

// Actualizar modifica un producto existente
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id int, req *request.ProductoRequest) (*response.ProductoResponse, error) {
	producto := productoDesdeRequest(req)
	producto.IdProducto = id

	if err := producto.Validar(); err != nil {
		return nil, err
	}

	if err := uc.productoRepo.Actualizar(ctx, producto); err != nil {
		return nil, err
	}

	actualizado, err := uc.productoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.FromProducto(actualizado)
	return &resp, nil
}

// Eliminar borra un producto del catálogo
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id int) error {
	if err := uc.productoRepo.Eliminar(ctx, id); err != nil {
		return err
	}
	log.Printf("🗑️  Producto eliminado: %d", id)
	return nil
}

// Listar retorna los productos que cumplen el criteria y el total sin paginar
func (uc *ProductoUseCase) Listar(ctx context.Context, crit criteria.Criteria) ([]response.ProductoResponse, int, error) {
	productos, total, err := uc.productoRepo.Matching(ctx, crit)
	if err != nil {
		return nil, 0, err
	}
	return response.FromProductos(productos), total, nil
}

// ObtenerPorID retorna un producto por su id
func (uc *ProductoUseCase) ObtenerPorID(ctx context.Context, id int) (*response.ProductoResponse, error) {
	producto, err := uc.productoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.FromProducto(producto)
	return &resp, nil
}

// Buscar busca productos por nombre parcial o barcode exacto
func (uc *ProductoUseCase) Buscar(ctx context.Context, termino string) ([]response.ProductoResponse, error) {
	productos, err := uc.productoRepo.BuscarPorNombreOBarcode(ctx, termino)
	if err != nil {
		return nil, err
	}
	return response.FromProductos(productos), nil
}

// BuscarPorBarcode retorna el producto con el código de barras exacto
func (uc *ProductoUseCase) BuscarPorBarcode(ctx context.Context, barcode string) (*response.ProductoResponse, error) {
	producto, err := uc.productoRepo.BuscarPorBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	resp := response.FromProducto(producto)
	return &resp, nil
}

// PorCategoria retorna los productos de una categoría
func (uc *ProductoUseCase) PorCategoria(ctx context.Context, idCategoria int) ([]response.ProductoResponse, error) {
	productos, err := uc.productoRepo.PorCategoria(ctx, idCategoria)
	if err != nil {
		return nil, err
	}
	return response.FromProductos(productos), nil
}

// StockBajo retorna los productos con existencias por debajo del mínimo
func (uc *ProductoUseCase) StockBajo(ctx context.Context, minimo int) ([]response.ProductoResponse, error) {
	productos, err := uc.productoRepo.StockBajo(ctx, minimo)
	if err != nil {
		return nil, err
	}
	return response.FromProductos(productos), nil
}

// MayorStock retorna el producto con más existencias
func (uc *ProductoUseCase) MayorStock(ctx context.Context) (*response.ProductoResponse, error) {
	producto, err := uc.productoRepo.MayorStock(ctx)
	if err != nil {
		return nil, err
	}
	resp := response.FromProducto(producto)
	return &resp, nil
}

// AjustarStock suma delta al stock del producto (delta negativo descuenta)
func (uc *ProductoUseCase) AjustarStock(ctx context.Context, idProducto int, req *request.AjusteStockRequest) error {
	if req.Delta == 0 {
		return entity.ErrStockInvalido
	}

	if err := uc.productoRepo.ActualizarStock(ctx, idProducto, req.Delta); err != nil {
		return err
	}

	log.Printf("💾 Stock del producto %d ajustado en %+d", idProducto, req.Delta)
	return nil
}

// AsignarDescuentoDirecto asigna un descuento directo y recalcula el efectivo
func (uc *ProductoUseCase) AsignarDescuentoDirecto(ctx context.Context, idProducto int, req *request.DescuentoDirectoRequest) error {
	if req.Descuento < 0 || req.Descuento > 100 {
		return entity.ErrDescuentoInvalido
	}

	if err := uc.productoRepo.ActualizarDescuentoDirecto(ctx, idProducto, req.Descuento); err != nil {
		return err
	}

	log.Printf("💾 Descuento directo %.2f%% asignado al producto %d", req.Descuento, idProducto)
	return nil
}

func productoDesdeRequest(req *request.ProductoRequest) *entity.Producto {
	return &entity.Producto{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		IdCategoria:      req.IdCategoria,
		IdProveedor:      req.IdProveedor,
		Precio:           decimal.NewFromFloat(req.Precio),
		Stock:            req.Stock,
		Sizes:            req.Sizes,
		Colors:           req.Colors,
		DescuentoDirecto: decimal.NewFromFloat(req.DescuentoDirecto),
		Barcode:          req.Barcode,
	}
}
