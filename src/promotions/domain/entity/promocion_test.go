package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fecha(anio, mes, dia int) time.Time {
	return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
}

func promocionValida() Promocion {
	return Promocion{
		IdProducto:          1,
		PorcentajeDescuento: decimal.NewFromInt(20),
		FechaInicio:         fecha(2026, 8, 1),
		FechaFin:            fecha(2026, 8, 31),
	}
}

func TestPromocionValidar(t *testing.T) {
	p := promocionValida()
	assert.NoError(t, p.Validar())
}

func TestPromocionValidarProductoRequerido(t *testing.T) {
	p := promocionValida()
	p.IdProducto = 0
	assert.ErrorIs(t, p.Validar(), ErrProductoRequerido)
}

func TestPromocionValidarPorcentaje(t *testing.T) {
	casos := []struct {
		nombre     string
		porcentaje decimal.Decimal
		valido     bool
	}{
		{"cero", decimal.Zero, false},
		{"negativo", decimal.NewFromInt(-5), false},
		{"uno", decimal.NewFromInt(1), true},
		{"cien", decimal.NewFromInt(100), true},
		{"mas de cien", decimal.NewFromFloat(100.01), false},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			p := promocionValida()
			p.PorcentajeDescuento = caso.porcentaje
			if caso.valido {
				assert.NoError(t, p.Validar())
			} else {
				assert.ErrorIs(t, p.Validar(), ErrPorcentajeInvalido)
			}
		})
	}
}

func TestPromocionValidarRangoFechas(t *testing.T) {
	invertida := promocionValida()
	invertida.FechaInicio = fecha(2026, 9, 1)
	invertida.FechaFin = fecha(2026, 8, 1)
	assert.ErrorIs(t, invertida.Validar(), ErrRangoFechasInvalido)

	sinFechas := promocionValida()
	sinFechas.FechaInicio = time.Time{}
	assert.ErrorIs(t, sinFechas.Validar(), ErrRangoFechasInvalido)

	// Una promoción de un solo día es válida
	unDia := promocionValida()
	unDia.FechaFin = unDia.FechaInicio
	assert.NoError(t, unDia.Validar())
}

func TestPromocionVigente(t *testing.T) {
	p := promocionValida()

	assert.True(t, p.Vigente(fecha(2026, 8, 1)))
	assert.True(t, p.Vigente(fecha(2026, 8, 15)))
	assert.True(t, p.Vigente(fecha(2026, 8, 31)))

	assert.False(t, p.Vigente(fecha(2026, 7, 31)))
	assert.False(t, p.Vigente(fecha(2026, 9, 1)))
}
