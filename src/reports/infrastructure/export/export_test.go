package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
)

func tablaVentas() *entity.ReporteTabla {
	return &entity.ReporteTabla{
		Titulo:   "Reporte de Ventas",
		Columnas: []string{"ID Venta", "Cliente", "Fecha", "Método Pago", "Total"},
		Secciones: []entity.Seccion{
			{Filas: [][]string{
				{"1", "Público general", "2026-08-01", "Efectivo", "350.00"},
				{"2", "María López", "2026-08-02", "Tarjeta", "1200.50"},
			}},
		},
	}
}

func tablaPorProveedor() *entity.ReporteTabla {
	return &entity.ReporteTabla{
		Titulo:   "Productos por Proveedor",
		Columnas: []string{"Producto", "Stock"},
		Secciones: []entity.Seccion{
			{Encabezado: "Proveedor: Telas del Norte", Filas: [][]string{{"Playera", "10"}}},
			{Encabezado: "Proveedor: Hilados SA", Filas: [][]string{{"Suéter", "7"}}},
		},
	}
}

func TestExportarCSV(t *testing.T) {
	data, err := ExportarCSV(tablaVentas())
	require.NoError(t, err)

	contenido := string(data)
	lineas := strings.Split(strings.TrimSpace(contenido), "\n")
	require.Len(t, lineas, 3)
	assert.Equal(t, "ID Venta,Cliente,Fecha,Método Pago,Total", strings.TrimSpace(lineas[0]))
	assert.Contains(t, contenido, "Público general")
	assert.Contains(t, contenido, "1200.50")
}

func TestExportarCSVConSecciones(t *testing.T) {
	data, err := ExportarCSV(tablaPorProveedor())
	require.NoError(t, err)

	contenido := string(data)
	assert.Contains(t, contenido, "Proveedor: Telas del Norte")
	assert.Contains(t, contenido, "Proveedor: Hilados SA")
	// Cada sección repite la fila de columnas
	assert.Equal(t, 2, strings.Count(contenido, "Producto,Stock"))
}

func TestExportarExcel(t *testing.T) {
	data, err := ExportarExcel(tablaVentas())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	hoja := f.GetSheetName(0)
	titulo, err := f.GetCellValue(hoja, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte de Ventas", titulo)

	rows, err := f.GetRows(hoja)
	require.NoError(t, err)

	var tieneEncabezado, tieneDatos bool
	for _, row := range rows {
		if len(row) > 0 && row[0] == "ID Venta" {
			tieneEncabezado = true
		}
		if len(row) > 1 && row[1] == "María López" {
			tieneDatos = true
		}
	}
	assert.True(t, tieneEncabezado, "el XLSX debe incluir la fila de columnas")
	assert.True(t, tieneDatos, "el XLSX debe incluir las filas de datos")
}

func TestExportarPDF(t *testing.T) {
	data, err := ExportarPDF(tablaVentas())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Firma del formato PDF
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportarDespachaPorFormato(t *testing.T) {
	tabla := tablaVentas()

	for _, formato := range []entity.FormatoReporte{entity.FormatoCSV, entity.FormatoXLSX, entity.FormatoPDF} {
		data, err := Exportar(tabla, formato)
		require.NoError(t, err, "formato %s", formato)
		assert.NotEmpty(t, data)
	}

	_, err := Exportar(tabla, entity.FormatoReporte("docx"))
	assert.ErrorIs(t, err, entity.ErrFormatoInvalido)
}
