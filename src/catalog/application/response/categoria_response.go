package response

import "github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"

// CategoriaResponse DTO de salida de categorías
type CategoriaResponse struct {
	IdCategoria int    `json:"id_categoria"`
	Nombre      string `json:"nombre"`
}

func FromCategoria(c *entity.Categoria) CategoriaResponse {
	return CategoriaResponse{IdCategoria: c.IdCategoria, Nombre: c.Nombre}
}

func FromCategorias(categorias []*entity.Categoria) []CategoriaResponse {
	out := make([]CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, FromCategoria(c))
	}
	return out
}
