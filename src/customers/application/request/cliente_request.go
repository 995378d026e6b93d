package request

// ClienteRequest DTO para crear o actualizar clientes
type ClienteRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Direccion string `json:"direccion"`
	Correo    string `json:"correo"`
	Telefono  string `json:"telefono"`
	Ciudad    string `json:"ciudad"`
}
