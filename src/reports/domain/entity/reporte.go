package entity

import "errors"

// Errores de dominio del módulo de reportes
var (
	ErrTipoReporteInvalido = errors.New("tipo de reporte desconocido")
	ErrFormatoInvalido     = errors.New("formato de exportación desconocido")
	ErrJobNoEncontrado     = errors.New("trabajo de exportación no encontrado")
	ErrRangoFechasInvalido = errors.New("rango de fechas inválido")
)

// TipoReporte cada reporte de negocio disponible
type TipoReporte string

const (
	ReporteVentas                TipoReporte = "ventas"
	ReporteInventario            TipoReporte = "inventario"
	ReporteMasVendidos           TipoReporte = "mas-vendidos"
	ReporteVentasPorCategoria    TipoReporte = "ventas-por-categoria"
	ReporteMetodosPago           TipoReporte = "metodos-pago"
	ReporteVentasPorCiudad       TipoReporte = "ventas-por-ciudad"
	ReporteMayorStock            TipoReporte = "mayor-stock"
	ReporteProductosPorProveedor TipoReporte = "productos-por-proveedor"
	ReporteCompradosMasDeUnaVez  TipoReporte = "comprados-mas-de-una-vez"
	ReporteNoVendidosTresMeses   TipoReporte = "no-vendidos-3-meses"
)

// Valido verifica que el tipo sea uno de los reportes conocidos
func (t TipoReporte) Valido() bool {
	switch t {
	case ReporteVentas, ReporteInventario, ReporteMasVendidos,
		ReporteVentasPorCategoria, ReporteMetodosPago, ReporteVentasPorCiudad,
		ReporteMayorStock, ReporteProductosPorProveedor,
		ReporteCompradosMasDeUnaVez, ReporteNoVendidosTresMeses:
		return true
	}
	return false
}

// FormatoReporte formato de archivo de salida
type FormatoReporte string

const (
	FormatoXLSX FormatoReporte = "xlsx"
	FormatoPDF  FormatoReporte = "pdf"
	FormatoCSV  FormatoReporte = "csv"
)

// Valido verifica que el formato sea soportado
func (f FormatoReporte) Valido() bool {
	return f == FormatoXLSX || f == FormatoPDF || f == FormatoCSV
}

// Seccion bloque de filas de un reporte, con encabezado opcional para los
// reportes agrupados (por proveedor, por cliente)
type Seccion struct {
	Encabezado string
	Filas      [][]string
}

// ReporteTabla resultado tabular de un reporte, independiente del formato
// de exportación
type ReporteTabla struct {
	Titulo    string
	Columnas  []string
	Secciones []Seccion
}

// TotalFilas cuenta las filas de datos de todas las secciones
func (r *ReporteTabla) TotalFilas() int {
	total := 0
	for i := range r.Secciones {
		total += len(r.Secciones[i].Filas)
	}
	return total
}
