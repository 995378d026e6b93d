package entity

import (
	"github.com/shopspring/decimal"
)

// Producto representa un artículo del inventario de la tienda.
// Descuento es el descuento efectivo derivado: siempre vale
// max(DescuentoDirecto, mejor promoción activa) y se recalcula en cada
// mutación de promociones.
type Producto struct {
	IdProducto       int             `json:"id_producto"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	IdCategoria      int             `json:"id_categoria"`
	CategoriaNombre  string          `json:"categoria_nombre,omitempty"`
	IdProveedor      *int            `json:"id_proveedor,omitempty"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock"`
	Sizes            string          `json:"sizes"`
	Colors           string          `json:"colors"`
	DescuentoDirecto decimal.Decimal `json:"descuento_directo"`
	Descuento        decimal.Decimal `json:"descuento"`
	Barcode          string          `json:"barcode"`
}

// Validar aplica las validaciones de campos requeridos y rangos
func (p *Producto) Validar() error {
	if p.Nombre == "" {
		return ErrNombreRequerido
	}
	if p.Precio.IsNegative() {
		return ErrPrecioInvalido
	}
	if p.Stock < 0 {
		return ErrStockInvalido
	}
	if p.DescuentoDirecto.IsNegative() || p.DescuentoDirecto.GreaterThan(decimal.NewFromInt(100)) {
		return ErrDescuentoInvalido
	}
	return nil
}

// Categoria agrupa productos; el nombre es único
type Categoria struct {
	IdCategoria int    `json:"id_categoria"`
	Nombre      string `json:"nombre"`
}

// Validar aplica las validaciones de la categoría
func (c *Categoria) Validar() error {
	if c.Nombre == "" {
		return ErrNombreRequerido
	}
	return nil
}
