package port

import (
	"context"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
)

// VentaRepository puerto de persistencia de ventas. Las escrituras son
// transaccionales: encabezado, detalles y ajuste de stock se confirman o
// revierten juntos.
type VentaRepository interface {
	// Registrar persiste la venta descontando stock. Retorna
	// ErrStockInsuficiente si algún producto no alcanza, sin efectos.
	Registrar(ctx context.Context, venta *entity.Venta) error
	// Actualizar restaura el stock de los detalles anteriores, reemplaza
	// los detalles y descuenta el stock nuevo.
	Actualizar(ctx context.Context, venta *entity.Venta) error
	// Eliminar restaura el stock vendido y borra detalles y encabezado.
	Eliminar(ctx context.Context, id int) error
	// Matching retorna los encabezados que cumplen el criteria y el total
	// sin paginar; con criteria vacío retorna todas por fecha descendente
	Matching(ctx context.Context, crit criteria.Criteria) ([]*entity.Venta, int, error)
	ObtenerPorID(ctx context.Context, id int) (*entity.Venta, error)
	PorCliente(ctx context.Context, idCliente int) ([]*entity.Venta, error)
	PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]*entity.Venta, error)
	PorMetodoPago(ctx context.Context, metodo entity.MetodoPago) ([]*entity.Venta, error)
	TotalPorDia(ctx context.Context, desde, hasta time.Time) ([]*entity.ResumenDia, error)
	ContarEnRango(ctx context.Context, desde, hasta time.Time) (int, error)
}
