package port

import (
	"context"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/entity"
)

// PromocionRepository puerto de persistencia de promociones.
// Las escrituras recalculan el descuento efectivo del producto afectado
// dentro de la misma transacción.
type PromocionRepository interface {
	Crear(ctx context.Context, promocion *entity.Promocion) error
	Actualizar(ctx context.Context, promocion *entity.Promocion) error
	Eliminar(ctx context.Context, id int) error
	// GuardarPromocionYDescuento actualiza el descuento directo del producto
	// y hace upsert de la promoción (o la elimina cuando promocion es nil y
	// eliminarPromocion trae un id), todo en una sola transacción.
	GuardarPromocionYDescuento(ctx context.Context, idProducto int, descuentoDirecto float64, promocion *entity.Promocion, eliminarPromocion *int) error
	ObtenerTodas(ctx context.Context) ([]*entity.Promocion, error)
	ObtenerPorID(ctx context.Context, id int) (*entity.Promocion, error)
	Activas(ctx context.Context) ([]*entity.Promocion, error)
	PorProducto(ctx context.Context, idProducto int) ([]*entity.Promocion, error)
	PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]*entity.Promocion, error)
	VistaPromocionesYDescuentos(ctx context.Context) ([]*entity.PromocionDescuento, error)
	RecomputarDescuento(ctx context.Context, idProducto int) error
	RecomputarTodos(ctx context.Context) (int, error)
}
