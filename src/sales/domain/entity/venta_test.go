package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetodoPagoValido(t *testing.T) {
	assert.True(t, MetodoPagoEfectivo.Valido())
	assert.True(t, MetodoPagoTarjeta.Valido())
	assert.True(t, MetodoPagoTransferencia.Valido())

	assert.False(t, MetodoPago("Cheque").Valido())
	assert.False(t, MetodoPago("efectivo").Valido())
	assert.False(t, MetodoPago("").Valido())
}

func TestVentaCalcularTotal(t *testing.T) {
	venta := Venta{
		MetodoPago: MetodoPagoEfectivo,
		Detalles: []DetalleVenta{
			{IdProducto: 1, Cantidad: 2, PrecioUnitario: decimal.NewFromFloat(150.00), DescuentoAplicado: decimal.Zero},
			{IdProducto: 2, Cantidad: 1, PrecioUnitario: decimal.NewFromFloat(200.00), DescuentoAplicado: decimal.NewFromInt(25)},
		},
	}

	// 300.00 + 150.00
	assert.Equal(t, "450.00", venta.CalcularTotal().StringFixed(2))
}

func TestVentaValidar(t *testing.T) {
	detalle := DetalleVenta{IdProducto: 1, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(10)}

	valida := Venta{MetodoPago: MetodoPagoTarjeta, Detalles: []DetalleVenta{detalle}}
	assert.NoError(t, valida.Validar())

	sinDetalles := Venta{MetodoPago: MetodoPagoTarjeta}
	assert.ErrorIs(t, sinDetalles.Validar(), ErrCarritoVacio)

	metodoInvalido := Venta{MetodoPago: "Vales", Detalles: []DetalleVenta{detalle}}
	assert.ErrorIs(t, metodoInvalido.Validar(), ErrMetodoPagoInvalido)

	cantidadCero := Venta{MetodoPago: MetodoPagoTarjeta, Detalles: []DetalleVenta{{IdProducto: 1, Cantidad: 0}}}
	assert.ErrorIs(t, cantidadCero.Validar(), ErrCantidadInvalida)
}

func TestDetalleVentaSubtotalRedondea(t *testing.T) {
	detalle := DetalleVenta{
		Cantidad:          3,
		PrecioUnitario:    decimal.NewFromFloat(33.33),
		DescuentoAplicado: decimal.NewFromFloat(12.5),
	}

	// 3 * 33.33 * 0.875 = 87.49125 -> 87.49
	assert.Equal(t, "87.49", detalle.Subtotal().StringFixed(2))
}
