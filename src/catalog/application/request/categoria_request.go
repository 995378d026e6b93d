package request

// CategoriaRequest DTO para crear o actualizar categorías
type CategoriaRequest struct {
	Nombre string `json:"nombre" binding:"required"`
}
