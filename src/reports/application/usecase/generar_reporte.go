package usecase

import (
	"context"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/metrics"
)

// GenerarReporteUseCase caso de uso para ejecutar las consultas de un
// reporte y obtener la tabla resultante
type GenerarReporteUseCase struct {
	reporteRepo port.ReporteQueryRepository
}

// NewGenerarReporteUseCase crea una nueva instancia del caso de uso
func NewGenerarReporteUseCase(reporteRepo port.ReporteQueryRepository) *GenerarReporteUseCase {
	return &GenerarReporteUseCase{reporteRepo: reporteRepo}
}

// Execute genera la tabla del reporte pedido. El rango de fechas solo
// aplica al reporte de ventas.
func (uc *GenerarReporteUseCase) Execute(ctx context.Context, tipo entity.TipoReporte, desde, hasta *time.Time) (*entity.ReporteTabla, error) {
	if !tipo.Valido() {
		return nil, entity.ErrTipoReporteInvalido
	}
	if desde != nil && hasta != nil && hasta.Before(*desde) {
		return nil, entity.ErrRangoFechasInvalido
	}

	inicio := time.Now()
	defer func() {
		metrics.ReporteDuracion.Observe(time.Since(inicio).Seconds())
	}()

	switch tipo {
	case entity.ReporteVentas:
		return uc.reporteRepo.Ventas(ctx, desde, hasta)
	case entity.ReporteInventario:
		return uc.reporteRepo.Inventario(ctx)
	case entity.ReporteMasVendidos:
		return uc.reporteRepo.MasVendidos(ctx)
	case entity.ReporteVentasPorCategoria:
		return uc.reporteRepo.VentasPorCategoria(ctx)
	case entity.ReporteMetodosPago:
		return uc.reporteRepo.MetodosPago(ctx)
	case entity.ReporteVentasPorCiudad:
		return uc.reporteRepo.VentasPorCiudad(ctx)
	case entity.ReporteMayorStock:
		return uc.reporteRepo.MayorStock(ctx)
	case entity.ReporteProductosPorProveedor:
		return uc.reporteRepo.ProductosPorProveedor(ctx)
	case entity.ReporteCompradosMasDeUnaVez:
		return uc.reporteRepo.CompradosMasDeUnaVez(ctx)
	case entity.ReporteNoVendidosTresMeses:
		return uc.reporteRepo.NoVendidosTresMeses(ctx)
	}

	return nil, entity.ErrTipoReporteInvalido
}
