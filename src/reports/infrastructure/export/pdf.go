package export

import (
	"bytes"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

// ExportarPDF genera el reporte como documento PDF en memoria
func ExportarPDF(tabla *entity.ReporteTabla) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(tabla.Titulo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Ancho de página útil repartido entre las columnas
	anchoPagina, _ := pdf.GetPageSize()
	izq, _, der, _ := pdf.GetMargins()
	anchoCol := (anchoPagina - izq - der) / float64(len(tabla.Columnas))

	for _, seccion := range tabla.Secciones {
		if seccion.Encabezado != "" {
			pdf.SetFont("Helvetica", "BI", 11)
			pdf.CellFormat(0, 8, tr(seccion.Encabezado), "", 1, "L", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(221, 221, 221)
		for _, nombre := range tabla.Columnas {
			pdf.CellFormat(anchoCol, 7, tr(nombre), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, datos := range seccion.Filas {
			for _, valor := range datos {
				pdf.CellFormat(anchoCol, 6, tr(valor), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error escribiendo PDF: %w", err)
	}

	return buf.Bytes(), nil
}
