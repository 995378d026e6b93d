package port

import (
	"context"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
)

// ReporteQueryRepository consultas de agregación de solo lectura para los
// reportes de negocio
type ReporteQueryRepository interface {
	Ventas(ctx context.Context, desde, hasta *time.Time) (*entity.ReporteTabla, error)
	Inventario(ctx context.Context) (*entity.ReporteTabla, error)
	MasVendidos(ctx context.Context) (*entity.ReporteTabla, error)
	VentasPorCategoria(ctx context.Context) (*entity.ReporteTabla, error)
	MetodosPago(ctx context.Context) (*entity.ReporteTabla, error)
	VentasPorCiudad(ctx context.Context) (*entity.ReporteTabla, error)
	MayorStock(ctx context.Context) (*entity.ReporteTabla, error)
	ProductosPorProveedor(ctx context.Context) (*entity.ReporteTabla, error)
	CompradosMasDeUnaVez(ctx context.Context) (*entity.ReporteTabla, error)
	NoVendidosTresMeses(ctx context.Context) (*entity.ReporteTabla, error)
}
