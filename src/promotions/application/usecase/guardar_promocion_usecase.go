package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/port"

	"github.com/shopspring/decimal"
)

// GuardarPromocionYDescuentoUseCase guardado combinado del descuento directo
// de un producto y su promoción temporal en una sola operación
type GuardarPromocionYDescuentoUseCase struct {
	promocionRepo port.PromocionRepository
}

// NewGuardarPromocionYDescuentoUseCase crea una nueva instancia del caso de uso
func NewGuardarPromocionYDescuentoUseCase(promocionRepo port.PromocionRepository) *GuardarPromocionYDescuentoUseCase {
	return &GuardarPromocionYDescuentoUseCase{promocionRepo: promocionRepo}
}

// Execute actualiza el descuento directo del producto y deja la promoción
// temporal como indique el request: con porcentaje_promocion > 0 la crea o
// actualiza (upsert por id_promocion); sin porcentaje, elimina la promoción
// id_promocion si viene. Descuento, promoción y recálculo van en la misma
// transacción del repositorio. Retorna la promoción resultante, o nil cuando
// el producto queda sin promoción.
func (uc *GuardarPromocionYDescuentoUseCase) Execute(ctx context.Context, req *request.PromocionYDescuentoRequest) (*entity.Promocion, error) {
	log.Printf("💾 Guardando promoción y descuento: producto %d, directo %.2f%%",
		req.IdProducto, req.DescuentoDirecto)

	if req.DescuentoDirecto < 0 || req.DescuentoDirecto > 100 {
		return nil, entity.ErrPorcentajeInvalido
	}

	// ========================================================================
	// PASO 1: DECIDIR UPSERT O ELIMINACIÓN DE LA PROMOCIÓN
	// ========================================================================
	var promocion *entity.Promocion
	var eliminar *int

	if req.PorcentajePromocion != nil && *req.PorcentajePromocion > 0 {
		fechaInicio, fechaFin, err := parsearRangoFechas(req.FechaInicio, req.FechaFin)
		if err != nil {
			return nil, err
		}

		promocion = &entity.Promocion{
			IdProducto:          req.IdProducto,
			PorcentajeDescuento: decimal.NewFromFloat(*req.PorcentajePromocion),
			FechaInicio:         fechaInicio,
			FechaFin:            fechaFin,
		}
		if req.IdPromocion != nil {
			promocion.IdPromocion = *req.IdPromocion
		}

		if err := promocion.Validar(); err != nil {
			return nil, err
		}
	} else {
		// Sin porcentaje la promoción existente (si la hay) se retira
		eliminar = req.IdPromocion
	}

	// ========================================================================
	// PASO 2: PERSISTIR TODO EN UNA SOLA TRANSACCIÓN
	// ========================================================================
	err := uc.promocionRepo.GuardarPromocionYDescuento(ctx,
		req.IdProducto, req.DescuentoDirecto, promocion, eliminar)
	if err != nil {
		log.Printf("❌ Error guardando promoción y descuento: %v", err)
		return nil, err
	}

	if promocion != nil {
		log.Printf("✅ Producto %d: descuento directo %.2f%%, promoción %d guardada",
			req.IdProducto, req.DescuentoDirecto, promocion.IdPromocion)
	} else {
		log.Printf("✅ Producto %d: descuento directo %.2f%%, sin promoción temporal",
			req.IdProducto, req.DescuentoDirecto)
	}

	return promocion, nil
}

// PromocionDesdeRequest convierte el DTO en entidad parseando las fechas
func PromocionDesdeRequest(req *request.PromocionRequest) (*entity.Promocion, error) {
	fechaInicio, fechaFin, err := parsearRangoFechas(req.FechaInicio, req.FechaFin)
	if err != nil {
		return nil, err
	}

	return &entity.Promocion{
		IdProducto:          req.IdProducto,
		PorcentajeDescuento: decimal.NewFromFloat(req.PorcentajeDescuento),
		FechaInicio:         fechaInicio,
		FechaFin:            fechaFin,
	}, nil
}

func parsearRangoFechas(inicio, fin string) (time.Time, time.Time, error) {
	fechaInicio, err := time.Parse("2006-01-02", inicio)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha_inicio inválida: %w", entity.ErrRangoFechasInvalido)
	}

	fechaFin, err := time.Parse("2006-01-02", fin)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fecha_fin inválida: %w", entity.ErrRangoFechasInvalido)
	}

	return fechaInicio, fechaFin, nil
}
