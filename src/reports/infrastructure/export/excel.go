package export

import (
	"bytes"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"

	"github.com/xuri/excelize/v2"
)

// ExportarExcel genera el reporte como libro XLSX en memoria
func ExportarExcel(tabla *entity.ReporteTabla) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	hoja := "Reporte"
	f.SetSheetName("Sheet1", hoja)

	estiloTitulo, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("error creando estilo: %w", err)
	}
	estiloEncabezado, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("error creando estilo: %w", err)
	}
	estiloSeccion, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true},
	})
	if err != nil {
		return nil, fmt.Errorf("error creando estilo: %w", err)
	}

	fila := 1
	celda, _ := excelize.CoordinatesToCellName(1, fila)
	f.SetCellValue(hoja, celda, tabla.Titulo)
	f.SetCellStyle(hoja, celda, celda, estiloTitulo)
	fila += 2

	for _, seccion := range tabla.Secciones {
		if seccion.Encabezado != "" {
			celda, _ = excelize.CoordinatesToCellName(1, fila)
			f.SetCellValue(hoja, celda, seccion.Encabezado)
			f.SetCellStyle(hoja, celda, celda, estiloSeccion)
			fila++
		}

		// Encabezados de columna
		for col, nombre := range tabla.Columnas {
			celda, _ = excelize.CoordinatesToCellName(col+1, fila)
			f.SetCellValue(hoja, celda, nombre)
			f.SetCellStyle(hoja, celda, celda, estiloEncabezado)
		}
		fila++

		for _, datos := range seccion.Filas {
			for col, valor := range datos {
				celda, _ = excelize.CoordinatesToCellName(col+1, fila)
				f.SetCellValue(hoja, celda, valor)
			}
			fila++
		}

		// Renglón en blanco entre secciones
		fila++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error escribiendo XLSX: %w", err)
	}

	return buf.Bytes(), nil
}
