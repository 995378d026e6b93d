package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocion representa un descuento temporal sobre un producto
type Promocion struct {
	IdPromocion         int             `json:"id_promocion"`
	IdProducto          int             `json:"id_producto"`
	ProductoNombre      string          `json:"producto,omitempty"`
	PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento"`
	FechaInicio         time.Time       `json:"fecha_inicio"`
	FechaFin            time.Time       `json:"fecha_fin"`
}

// Validar verifica las reglas de negocio de la promoción.
// El porcentaje debe ser mayor que cero y no exceder 100, y el rango
// de fechas debe estar bien ordenado.
func (p *Promocion) Validar() error {
	if p.IdProducto <= 0 {
		return ErrProductoRequerido
	}
	if !p.PorcentajeDescuento.IsPositive() || p.PorcentajeDescuento.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPorcentajeInvalido
	}
	if p.FechaInicio.IsZero() || p.FechaFin.IsZero() {
		return ErrRangoFechasInvalido
	}
	if p.FechaFin.Before(p.FechaInicio) {
		return ErrRangoFechasInvalido
	}
	return nil
}

// Vigente indica si la promoción aplica en la fecha dada
func (p *Promocion) Vigente(fecha time.Time) bool {
	dia := fecha.Truncate(24 * time.Hour)
	return !dia.Before(p.FechaInicio.Truncate(24*time.Hour)) &&
		!dia.After(p.FechaFin.Truncate(24*time.Hour))
}
