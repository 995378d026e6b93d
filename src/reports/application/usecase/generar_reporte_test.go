package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
)

// reporteRepoFalso registra qué consulta se ejecutó y responde una tabla
// con el título del reporte pedido
type reporteRepoFalso struct {
	llamado string
}

func (r *reporteRepoFalso) tabla(nombre string) (*entity.ReporteTabla, error) {
	r.llamado = nombre
	return &entity.ReporteTabla{Titulo: nombre}, nil
}

func (r *reporteRepoFalso) Ventas(_ context.Context, _, _ *time.Time) (*entity.ReporteTabla, error) {
	return r.tabla("Ventas")
}
func (r *reporteRepoFalso) Inventario(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("Inventario")
}
func (r *reporteRepoFalso) MasVendidos(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("MasVendidos")
}
func (r *reporteRepoFalso) VentasPorCategoria(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("VentasPorCategoria")
}
func (r *reporteRepoFalso) MetodosPago(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("MetodosPago")
}
func (r *reporteRepoFalso) VentasPorCiudad(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("VentasPorCiudad")
}
func (r *reporteRepoFalso) MayorStock(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("MayorStock")
}
func (r *reporteRepoFalso) ProductosPorProveedor(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("ProductosPorProveedor")
}
func (r *reporteRepoFalso) CompradosMasDeUnaVez(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("CompradosMasDeUnaVez")
}
func (r *reporteRepoFalso) NoVendidosTresMeses(_ context.Context) (*entity.ReporteTabla, error) {
	return r.tabla("NoVendidosTresMeses")
}

func TestGenerarReporteDespachaCadaTipo(t *testing.T) {
	casos := map[entity.TipoReporte]string{
		entity.ReporteVentas:                "Ventas",
		entity.ReporteInventario:            "Inventario",
		entity.ReporteMasVendidos:           "MasVendidos",
		entity.ReporteVentasPorCategoria:    "VentasPorCategoria",
		entity.ReporteMetodosPago:           "MetodosPago",
		entity.ReporteVentasPorCiudad:       "VentasPorCiudad",
		entity.ReporteMayorStock:            "MayorStock",
		entity.ReporteProductosPorProveedor: "ProductosPorProveedor",
		entity.ReporteCompradosMasDeUnaVez:  "CompradosMasDeUnaVez",
		entity.ReporteNoVendidosTresMeses:   "NoVendidosTresMeses",
	}

	for tipo, esperado := range casos {
		t.Run(string(tipo), func(t *testing.T) {
			repo := &reporteRepoFalso{}
			uc := NewGenerarReporteUseCase(repo)

			tabla, err := uc.Execute(context.Background(), tipo, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, esperado, repo.llamado)
			assert.Equal(t, esperado, tabla.Titulo)
		})
	}
}

func TestGenerarReporteRechazaTipoInvalido(t *testing.T) {
	uc := NewGenerarReporteUseCase(&reporteRepoFalso{})

	_, err := uc.Execute(context.Background(), entity.TipoReporte("corte-de-caja"), nil, nil)
	assert.ErrorIs(t, err, entity.ErrTipoReporteInvalido)
}

func TestGenerarReporteRechazaRangoInvertido(t *testing.T) {
	uc := NewGenerarReporteUseCase(&reporteRepoFalso{})

	desde := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), entity.ReporteVentas, &desde, &hasta)
	assert.ErrorIs(t, err, entity.ErrRangoFechasInvalido)
}
