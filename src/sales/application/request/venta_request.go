package request

// ItemVentaRequest una línea de la venta a registrar
type ItemVentaRequest struct {
	IdProducto int `json:"id_producto" binding:"required"`
	Cantidad   int `json:"cantidad" binding:"required"`
}

// ClienteNuevoRequest datos para registrar al cliente en el momento de la
// venta cuando todavía no existe
type ClienteNuevoRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Ciudad    string `json:"ciudad"`
}

// VentaRequest DTO para registrar o actualizar una venta.
// Con IdCliente <= 0 y Cliente presente, el cliente se registra primero.
type VentaRequest struct {
	IdCliente  int                  `json:"id_cliente"`
	Cliente    *ClienteNuevoRequest `json:"cliente,omitempty"`
	MetodoPago string               `json:"metodo_pago" binding:"required"`
	Items      []ItemVentaRequest   `json:"items" binding:"required"`
}
