package usecase

import (
	"context"
	"log"

	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/application/response"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/infrastructure/cache"
)

// CategoriaUseCase casos de uso de gestión de categorías
type CategoriaUseCase struct {
	categoriaRepo  port.CategoriaRepository
	categoriaCache *cache.CategoriaCache
}

// NewCategoriaUseCase crea una nueva instancia del caso de uso
func NewCategoriaUseCase(categoriaRepo port.CategoriaRepository, categoriaCache *cache.CategoriaCache) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo, categoriaCache: categoriaCache}
}

// Crear registra una categoría nueva
func (uc *CategoriaUseCase) Crear(ctx context.Context, req *request.CategoriaRequest) (*response.CategoriaResponse, error) {
	categoria := &entity.Categoria{Nombre: req.Nombre}

	if err := categoria.Validar(); err != nil {
		return nil, err
	}

	if err := uc.categoriaRepo.Crear(ctx, categoria); err != nil {
		return nil, err
	}

	uc.categoriaCache.Actualizar(cache.Categoria{ID: categoria.IdCategoria, Nombre: categoria.Nombre})
	log.Printf("✅ Categoría creada: %d - %s", categoria.IdCategoria, categoria.Nombre)

	resp := response.FromCategoria(categoria)
	return &resp, nil
}

// Actualizar renombra una categoría existente
func (uc *CategoriaUseCase) Actualizar(ctx context.Context, id int, req *request.CategoriaRequest) (*response.CategoriaResponse, error) {
	categoria := &entity.Categoria{IdCategoria: id, Nombre: req.Nombre}

	if err := categoria.Validar(); err != nil {
		return nil, err
	}

	if err := uc.categoriaRepo.Actualizar(ctx, categoria); err != nil {
		return nil, err
	}

	uc.categoriaCache.Actualizar(cache.Categoria{ID: id, Nombre: categoria.Nombre})

	resp := response.FromCategoria(categoria)
	return &resp, nil
}

// Eliminar borra una categoría sin productos asociados
func (uc *CategoriaUseCase) Eliminar(ctx context.Context, id int) error {
	if err := uc.categoriaRepo.Eliminar(ctx, id); err != nil {
		return err
	}
	uc.categoriaCache.Invalidar()
	log.Printf("🗑️  Categoría eliminada: %d", id)
	return nil
}

// Listar retorna todas las categorías
func (uc *CategoriaUseCase) Listar(ctx context.Context) ([]response.CategoriaResponse, error) {
	categorias, err := uc.categoriaRepo.ObtenerTodas(ctx)
	if err != nil {
		return nil, err
	}
	return response.FromCategorias(categorias), nil
}

// ObtenerPorID retorna una categoría por su id
func (uc *CategoriaUseCase) ObtenerPorID(ctx context.Context, id int) (*response.CategoriaResponse, error) {
	categoria, err := uc.categoriaRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.FromCategoria(categoria)
	return &resp, nil
}
