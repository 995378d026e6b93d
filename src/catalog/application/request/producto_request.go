package request

// ProductoRequest DTO para crear o actualizar productos
type ProductoRequest struct {
	Nombre           string  `json:"nombre" binding:"required"`
	Descripcion      string  `json:"descripcion"`
	IdCategoria      int     `json:"id_categoria" binding:"required"`
	IdProveedor      *int    `json:"id_proveedor"`
	Precio           float64 `json:"precio" binding:"required"`
	Stock            int     `json:"stock"`
	Sizes            string  `json:"sizes"`
	Colors           string  `json:"colors"`
	DescuentoDirecto float64 `json:"descuento_directo"`
	Barcode          string  `json:"barcode"`
}

// DescuentoDirectoRequest DTO para asignar un descuento directo
type DescuentoDirectoRequest struct {
	Descuento float64 `json:"descuento"`
}

// AjusteStockRequest DTO para ajustar el stock de un producto.
// Delta negativo descuenta existencias.
type AjusteStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}
