package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func productoValido() Producto {
	return Producto{
		Nombre:      "Playera básica",
		IdCategoria: 1,
		Precio:      decimal.NewFromFloat(149.90),
		Stock:       20,
		Sizes:       "S,M,L",
		Colors:      "Negro,Blanco",
	}
}

func TestProductoValidar(t *testing.T) {
	p := productoValido()
	assert.NoError(t, p.Validar())
}

func TestProductoValidarNombreRequerido(t *testing.T) {
	p := productoValido()
	p.Nombre = ""
	assert.ErrorIs(t, p.Validar(), ErrNombreRequerido)
}

func TestProductoValidarPrecioYStock(t *testing.T) {
	conPrecioNegativo := productoValido()
	conPrecioNegativo.Precio = decimal.NewFromFloat(-1)
	assert.ErrorIs(t, conPrecioNegativo.Validar(), ErrPrecioInvalido)

	conStockNegativo := productoValido()
	conStockNegativo.Stock = -1
	assert.ErrorIs(t, conStockNegativo.Validar(), ErrStockInvalido)

	// Precio cero y stock cero son estados válidos
	gratis := productoValido()
	gratis.Precio = decimal.Zero
	gratis.Stock = 0
	assert.NoError(t, gratis.Validar())
}

func TestProductoValidarDescuentoDirecto(t *testing.T) {
	negativo := productoValido()
	negativo.DescuentoDirecto = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negativo.Validar(), ErrDescuentoInvalido)

	excedido := productoValido()
	excedido.DescuentoDirecto = decimal.NewFromInt(101)
	assert.ErrorIs(t, excedido.Validar(), ErrDescuentoInvalido)

	limite := productoValido()
	limite.DescuentoDirecto = decimal.NewFromInt(100)
	assert.NoError(t, limite.Validar())
}

func TestCategoriaValidar(t *testing.T) {
	c := Categoria{Nombre: "Pantalones"}
	assert.NoError(t, c.Validar())

	vacia := Categoria{}
	assert.ErrorIs(t, vacia.Validar(), ErrNombreRequerido)
}
