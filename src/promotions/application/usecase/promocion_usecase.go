package usecase

import (
	"context"
	"log"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/port"
)

// PromocionUseCase casos de uso de consulta y mantenimiento de promociones
type PromocionUseCase struct {
	promocionRepo port.PromocionRepository
}

// NewPromocionUseCase crea una nueva instancia del caso de uso
func NewPromocionUseCase(promocionRepo port.PromocionRepository) *PromocionUseCase {
	return &PromocionUseCase{promocionRepo: promocionRepo}
}

// Crear valida y registra una promoción, recalculando el descuento del
// producto en la misma transacción del repositorio
func (uc *PromocionUseCase) Crear(ctx context.Context, req *request.PromocionRequest) (*entity.Promocion, error) {
	promocion, err := PromocionDesdeRequest(req)
	if err != nil {
		return nil, err
	}

	if err := promocion.Validar(); err != nil {
		return nil, err
	}

	if err := uc.promocionRepo.Crear(ctx, promocion); err != nil {
		log.Printf("❌ Error guardando promoción: %v", err)
		return nil, err
	}

	log.Printf("✅ Promoción %d registrada para el producto %d",
		promocion.IdPromocion, promocion.IdProducto)

	return promocion, nil
}

// Actualizar modifica una promoción y recalcula los descuentos afectados
func (uc *PromocionUseCase) Actualizar(ctx context.Context, id int, req *request.PromocionRequest) (*entity.Promocion, error) {
	promocion, err := PromocionDesdeRequest(req)
	if err != nil {
		return nil, err
	}
	promocion.IdPromocion = id

	if err := promocion.Validar(); err != nil {
		return nil, err
	}

	if err := uc.promocionRepo.Actualizar(ctx, promocion); err != nil {
		return nil, err
	}

	return promocion, nil
}

// Eliminar borra una promoción y recalcula el descuento del producto
func (uc *PromocionUseCase) Eliminar(ctx context.Context, id int) error {
	if err := uc.promocionRepo.Eliminar(ctx, id); err != nil {
		return err
	}
	log.Printf("🗑️  Promoción eliminada: %d", id)
	return nil
}

// Listar retorna todas las promociones con el nombre del producto
func (uc *PromocionUseCase) Listar(ctx context.Context) ([]*entity.Promocion, error) {
	return uc.promocionRepo.ObtenerTodas(ctx)
}

// ObtenerPorID retorna una promoción por su id
func (uc *PromocionUseCase) ObtenerPorID(ctx context.Context, id int) (*entity.Promocion, error) {
	return uc.promocionRepo.ObtenerPorID(ctx, id)
}

// Activas retorna las promociones vigentes hoy
func (uc *PromocionUseCase) Activas(ctx context.Context) ([]*entity.Promocion, error) {
	return uc.promocionRepo.Activas(ctx)
}

// PorProducto retorna las promociones de un producto
func (uc *PromocionUseCase) PorProducto(ctx context.Context, idProducto int) ([]*entity.Promocion, error) {
	return uc.promocionRepo.PorProducto(ctx, idProducto)
}

// PorRangoFechas retorna las promociones que se traslapan con el rango
func (uc *PromocionUseCase) PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]*entity.Promocion, error) {
	return uc.promocionRepo.PorRangoFechas(ctx, desde, hasta)
}

// VistaPromocionesYDescuentos retorna la vista combinada de promociones y descuentos
func (uc *PromocionUseCase) VistaPromocionesYDescuentos(ctx context.Context) ([]*entity.PromocionDescuento, error) {
	return uc.promocionRepo.VistaPromocionesYDescuentos(ctx)
}

// Recomputar recalcula el descuento efectivo de un producto
func (uc *PromocionUseCase) Recomputar(ctx context.Context, idProducto int) error {
	return uc.promocionRepo.RecomputarDescuento(ctx, idProducto)
}

// RecomputarTodos recalcula el descuento efectivo de todos los productos
// y retorna cuántos cambiaron
func (uc *PromocionUseCase) RecomputarTodos(ctx context.Context) (int, error) {
	actualizados, err := uc.promocionRepo.RecomputarTodos(ctx)
	if err != nil {
		return 0, err
	}
	log.Printf("🔄 Descuentos recalculados: %d productos actualizados", actualizados)
	return actualizados, nil
}
