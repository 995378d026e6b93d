package usecase

import (
	"context"
	"log"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/metrics"
)

// EliminarVentaUseCase caso de uso para anular una venta devolviendo el
// stock vendido al inventario
type EliminarVentaUseCase struct {
	ventaRepo port.VentaRepository
}

// NewEliminarVentaUseCase crea una nueva instancia del caso de uso
func NewEliminarVentaUseCase(ventaRepo port.VentaRepository) *EliminarVentaUseCase {
	return &EliminarVentaUseCase{ventaRepo: ventaRepo}
}

// Execute anula la venta. Restaurar stock, borrar detalles y borrar el
// encabezado van en una sola transacción.
func (uc *EliminarVentaUseCase) Execute(ctx context.Context, idVenta int) error {
	if err := uc.ventaRepo.Eliminar(ctx, idVenta); err != nil {
		log.Printf("❌ Error anulando venta %d: %v", idVenta, err)
		return err
	}

	metrics.VentasAnuladas.Inc()
	log.Printf("🗑️  Venta %d anulada, stock restaurado", idVenta)
	return nil
}
