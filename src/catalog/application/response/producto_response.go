package response

import "github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"

// ProductoResponse DTO de salida de productos
type ProductoResponse struct {
	IdProducto       int     `json:"id_producto"`
	Nombre           string  `json:"nombre"`
	Descripcion      string  `json:"descripcion,omitempty"`
	IdCategoria      int     `json:"id_categoria"`
	Categoria        string  `json:"categoria"`
	IdProveedor      *int    `json:"id_proveedor,omitempty"`
	Precio           string  `json:"precio"`
	Stock            int     `json:"stock"`
	Sizes            string  `json:"sizes,omitempty"`
	Colors           string  `json:"colors,omitempty"`
	DescuentoDirecto string  `json:"descuento_directo"`
	Descuento        string  `json:"descuento"`
	Barcode          string  `json:"barcode,omitempty"`
}

// FromProducto convierte la entidad al DTO de salida
func FromProducto(p *entity.Producto) ProductoResponse {
	return ProductoResponse{
		IdProducto:       p.IdProducto,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		IdCategoria:      p.IdCategoria,
		Categoria:        p.CategoriaNombre,
		IdProveedor:      p.IdProveedor,
		Precio:           p.Precio.StringFixed(2),
		Stock:            p.Stock,
		Sizes:            p.Sizes,
		Colors:           p.Colors,
		DescuentoDirecto: p.DescuentoDirecto.StringFixed(2),
		Descuento:        p.Descuento.StringFixed(2),
		Barcode:          p.Barcode,
	}
}

// FromProductos convierte una lista de entidades
func FromProductos(productos []*entity.Producto) []ProductoResponse {
	out := make([]ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, FromProducto(p))
	}
	return out
}
