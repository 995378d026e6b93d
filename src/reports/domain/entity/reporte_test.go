package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTipoReporteValido(t *testing.T) {
	tipos := []TipoReporte{
		ReporteVentas, ReporteInventario, ReporteMasVendidos,
		ReporteVentasPorCategoria, ReporteMetodosPago, ReporteVentasPorCiudad,
		ReporteMayorStock, ReporteProductosPorProveedor,
		ReporteCompradosMasDeUnaVez, ReporteNoVendidosTresMeses,
	}
	for _, tipo := range tipos {
		assert.True(t, tipo.Valido(), "tipo %q debería ser válido", tipo)
	}

	assert.False(t, TipoReporte("ventas-mensuales").Valido())
	assert.False(t, TipoReporte("").Valido())
}

func TestFormatoReporteValido(t *testing.T) {
	assert.True(t, FormatoXLSX.Valido())
	assert.True(t, FormatoPDF.Valido())
	assert.True(t, FormatoCSV.Valido())

	assert.False(t, FormatoReporte("docx").Valido())
	assert.False(t, FormatoReporte("XLSX").Valido())
}

func TestReporteTablaTotalFilas(t *testing.T) {
	tabla := ReporteTabla{
		Titulo:   "Productos por Proveedor",
		Columnas: []string{"Producto", "Stock"},
		Secciones: []Seccion{
			{Encabezado: "Proveedor: Telas del Norte", Filas: [][]string{{"Playera", "10"}, {"Pantalón", "4"}}},
			{Encabezado: "Proveedor: Hilados SA", Filas: [][]string{{"Suéter", "7"}}},
		},
	}

	assert.Equal(t, 3, tabla.TotalFilas())

	vacia := ReporteTabla{Titulo: "Ventas"}
	assert.Equal(t, 0, vacia.TotalFilas())
}

func TestNewExportJob(t *testing.T) {
	job := NewExportJob(ReporteInventario, FormatoXLSX)

	assert.NotEqual(t, uuid.Nil, job.Id)
	assert.Equal(t, ReporteInventario, job.Tipo)
	assert.Equal(t, FormatoXLSX, job.Formato)
	assert.Equal(t, JobPendiente, job.Estado)
	assert.False(t, job.CreadoEn.IsZero())
	assert.Nil(t, job.CompletadoEn)
}
