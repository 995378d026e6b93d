package ticket

import (
	"bytes"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/response"

	"github.com/jung-kurt/gofpdf"
)

// GenerarTicketPDF arma el ticket de venta en PDF, listo para imprimir
// en caja
func GenerarTicketPDF(venta *response.VentaResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Mis Trapitos"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Ticket de venta #%d", venta.IdVenta)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, venta.Fecha.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("Cliente: "+venta.Cliente), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Encabezado de la tabla de items
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(55, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, "Cant.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(15, 6, "Desc.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range venta.Items {
		pdf.CellFormat(55, 6, tr(item.Producto), "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", item.Cantidad), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, "$"+item.PrecioUnitario, "", 0, "R", false, 0, "")
		pdf.CellFormat(15, 6, item.DescuentoAplicado+"%", "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, "$"+item.Subtotal, "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "TOTAL", "T", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "$"+venta.Total, "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Método de pago: "+venta.MetodoPago), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(0, 6, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generando ticket PDF: %w", err)
	}

	return buf.Bytes(), nil
}
