package response

import (
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
)

// ItemVentaResponse línea del ticket con subtotal calculado
type ItemVentaResponse struct {
	IdProducto        int    `json:"id_producto"`
	Producto          string `json:"producto"`
	Cantidad          int    `json:"cantidad"`
	PrecioUnitario    string `json:"precio_unitario"`
	DescuentoAplicado string `json:"descuento_aplicado"`
	Subtotal          string `json:"subtotal"`
}

// VentaResponse DTO de la venta listo para imprimir el ticket
type VentaResponse struct {
	IdVenta    int                 `json:"id_venta"`
	IdCliente  int                 `json:"id_cliente"`
	Cliente    string              `json:"cliente"`
	Fecha      time.Time           `json:"fecha"`
	MetodoPago string              `json:"metodo_pago"`
	Items      []ItemVentaResponse `json:"items"`
	Total      string              `json:"total"`
}

// FromVenta convierte la entidad al DTO de salida
func FromVenta(v *entity.Venta) VentaResponse {
	items := make([]ItemVentaResponse, 0, len(v.Detalles))
	for i := range v.Detalles {
		d := &v.Detalles[i]
		items = append(items, ItemVentaResponse{
			IdProducto:        d.IdProducto,
			Producto:          d.ProductoNombre,
			Cantidad:          d.Cantidad,
			PrecioUnitario:    d.PrecioUnitario.StringFixed(2),
			DescuentoAplicado: d.DescuentoAplicado.StringFixed(2),
			Subtotal:          d.Subtotal().StringFixed(2),
		})
	}

	return VentaResponse{
		IdVenta:    v.IdVenta,
		IdCliente:  v.IdCliente,
		Cliente:    v.ClienteNombre,
		Fecha:      v.Fecha,
		MetodoPago: string(v.MetodoPago),
		Items:      items,
		Total:      v.Total.StringFixed(2),
	}
}

// FromVentas convierte una lista de entidades
func FromVentas(ventas []*entity.Venta) []VentaResponse {
	out := make([]VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, FromVenta(v))
	}
	return out
}
