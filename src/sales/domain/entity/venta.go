package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetodoPago forma de pago aceptada en caja
type MetodoPago string

const (
	MetodoPagoEfectivo      MetodoPago = "Efectivo"
	MetodoPagoTarjeta       MetodoPago = "Tarjeta"
	MetodoPagoTransferencia MetodoPago = "Transferencia"
)

// Valido verifica que el método de pago sea uno de los aceptados
func (m MetodoPago) Valido() bool {
	switch m {
	case MetodoPagoEfectivo, MetodoPagoTarjeta, MetodoPagoTransferencia:
		return true
	}
	return false
}

// DetalleVenta una línea vendida con el precio y descuento aplicados
// al momento de la venta
type DetalleVenta struct {
	IdDetalle         int             `json:"id_detalle"`
	IdVenta           int             `json:"id_venta"`
	IdProducto        int             `json:"id_producto"`
	ProductoNombre    string          `json:"producto,omitempty"`
	Cantidad          int             `json:"cantidad"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"`
	DescuentoAplicado decimal.Decimal `json:"descuento_aplicado"`
}

// Subtotal calcula cantidad * precio * (1 - descuento/100), redondeado a
// dos decimales
func (d *DetalleVenta) Subtotal() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(d.DescuentoAplicado.Div(cien))
	return d.PrecioUnitario.
		Mul(decimal.NewFromInt(int64(d.Cantidad))).
		Mul(factor).
		Round(2)
}

// Venta encabezado de una venta confirmada con sus detalles
type Venta struct {
	IdVenta       int             `json:"id_venta"`
	IdCliente     int             `json:"id_cliente"`
	ClienteNombre string          `json:"cliente,omitempty"`
	Fecha         time.Time       `json:"fecha"`
	MetodoPago    MetodoPago      `json:"metodo_pago"`
	Total         decimal.Decimal `json:"total"`
	Detalles      []DetalleVenta  `json:"detalles,omitempty"`
}

// ResumenDia total vendido y número de ventas de un día
type ResumenDia struct {
	Dia       time.Time       `json:"dia"`
	NumVentas int             `json:"num_ventas"`
	Total     decimal.Decimal `json:"total"`
}

// CalcularTotal suma los subtotales de los detalles
func (v *Venta) CalcularTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range v.Detalles {
		total = total.Add(v.Detalles[i].Subtotal())
	}
	return total
}

// Validar verifica las reglas de negocio de la venta
func (v *Venta) Validar() error {
	if len(v.Detalles) == 0 {
		return ErrCarritoVacio
	}
	if !v.MetodoPago.Valido() {
		return ErrMetodoPagoInvalido
	}
	for i := range v.Detalles {
		if v.Detalles[i].Cantidad <= 0 {
			return ErrCantidadInvalida
		}
	}
	return nil
}
