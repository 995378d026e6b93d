package request

// PromocionRequest DTO para crear o actualizar promociones.
// Las fechas van en formato YYYY-MM-DD.
type PromocionRequest struct {
	IdProducto          int     `json:"id_producto" binding:"required"`
	PorcentajeDescuento float64 `json:"porcentaje_descuento" binding:"required"`
	FechaInicio         string  `json:"fecha_inicio" binding:"required"`
	FechaFin            string  `json:"fecha_fin" binding:"required"`
}

// PromocionYDescuentoRequest DTO del guardado combinado de descuento directo
// y promoción temporal de un producto. Con porcentaje_promocion ausente o en
// cero la promoción id_promocion (si viene) se elimina; con id_promocion
// presente la promoción se actualiza en lugar de crearse.
type PromocionYDescuentoRequest struct {
	IdProducto          int      `json:"id_producto" binding:"required"`
	DescuentoDirecto    float64  `json:"descuento_directo"`
	IdPromocion         *int     `json:"id_promocion"`
	PorcentajePromocion *float64 `json:"porcentaje_promocion"`
	FechaInicio         string   `json:"fecha_inicio"`
	FechaFin            string   `json:"fecha_fin"`
}
