package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromocionDescuento fila de la vista combinada de promociones y descuentos:
// cada producto con su descuento directo, el mejor descuento promocional
// vigente y el descuento efectivo resultante.
type PromocionDescuento struct {
	IdProducto         int             `json:"id_producto"`
	ProductoNombre     string          `json:"producto"`
	DescuentoDirecto   decimal.Decimal `json:"descuento_directo"`
	DescuentoPromocion decimal.Decimal `json:"descuento_promocion"`
	DescuentoEfectivo  decimal.Decimal `json:"descuento_efectivo"`
	FechaInicio        *time.Time      `json:"fecha_inicio,omitempty"`
	FechaFin           *time.Time      `json:"fecha_fin,omitempty"`
}
