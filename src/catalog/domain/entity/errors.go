package entity

import "errors"

var (
	ErrNombreRequerido       = errors.New("el nombre es obligatorio")
	ErrPrecioInvalido        = errors.New("el precio no puede ser negativo")
	ErrStockInvalido         = errors.New("el stock no puede ser negativo")
	ErrDescuentoInvalido     = errors.New("el descuento debe estar entre 0 y 100")
	ErrProductoNoEncontrado  = errors.New("no se encontró el producto")
	ErrCategoriaNoEncontrada = errors.New("no se encontró la categoría")
	ErrCategoriaDuplicada    = errors.New("ya existe una categoría con ese nombre")
	ErrCategoriaConProductos = errors.New("la categoría tiene productos asociados y no puede eliminarse")
	ErrBarcodeDuplicado      = errors.New("ya existe un producto con ese código de barras")
	ErrStockInsuficiente     = errors.New("stock insuficiente")
)
