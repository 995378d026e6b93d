package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
)

// ExportarCSV genera el reporte como CSV en memoria. Los encabezados de
// sección van como fila propia de una sola celda.
func ExportarCSV(tabla *entity.ReporteTabla) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, seccion := range tabla.Secciones {
		if seccion.Encabezado != "" {
			if err := w.Write([]string{seccion.Encabezado}); err != nil {
				return nil, fmt.Errorf("error escribiendo CSV: %w", err)
			}
		}

		if err := w.Write(tabla.Columnas); err != nil {
			return nil, fmt.Errorf("error escribiendo CSV: %w", err)
		}

		for _, fila := range seccion.Filas {
			if err := w.Write(fila); err != nil {
				return nil, fmt.Errorf("error escribiendo CSV: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error escribiendo CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// Exportar despacha al exportador del formato pedido
func Exportar(tabla *entity.ReporteTabla, formato entity.FormatoReporte) ([]byte, error) {
	switch formato {
	case entity.FormatoXLSX:
		return ExportarExcel(tabla)
	case entity.FormatoPDF:
		return ExportarPDF(tabla)
	case entity.FormatoCSV:
		return ExportarCSV(tabla)
	}
	return nil, entity.ErrFormatoInvalido
}
