package usecase

import (
	"context"
	"log"

	"github.com/SamuelBrambila12/MisTrapitos/src/suppliers/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/suppliers/domain/port"
)

// ProveedorRequest DTO para crear o actualizar proveedores
type ProveedorRequest struct {
	Nombre            string `json:"nombre" binding:"required"`
	Contacto          string `json:"contacto"`
	Direccion         string `json:"direccion"`
	Telefono          string `json:"telefono"`
	Correo            string `json:"correo"`
	ProductosVendidos string `json:"productos_vendidos"`
}

// ProveedorUseCase casos de uso de gestión de proveedores
type ProveedorUseCase struct {
	proveedorRepo port.ProveedorRepository
}

// NewProveedorUseCase crea una nueva instancia del caso de uso
func NewProveedorUseCase(proveedorRepo port.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedorRepo: proveedorRepo}
}

// Crear registra un proveedor nuevo
func (uc *ProveedorUseCase) Crear(ctx context.Context, req *ProveedorRequest) (*entity.Proveedor, error) {
	proveedor := proveedorDesdeRequest(req)

	if err := proveedor.Validar(); err != nil {
		return nil, err
	}

	if err := uc.proveedorRepo.Crear(ctx, proveedor); err != nil {
		return nil, err
	}

	log.Printf("✅ Proveedor registrado: %d - %s", proveedor.IdProveedor, proveedor.Nombre)
	return proveedor, nil
}

// Actualizar modifica un proveedor existente
func (uc *ProveedorUseCase) Actualizar(ctx context.Context, id int, req *ProveedorRequest) (*entity.Proveedor, error) {
	proveedor := proveedorDesdeRequest(req)
	proveedor.IdProveedor = id

	if err := proveedor.Validar(); err != nil {
		return nil, err
	}

	if err := uc.proveedorRepo.Actualizar(ctx, proveedor); err != nil {
		return nil, err
	}

	return proveedor, nil
}

// Eliminar borra un proveedor, dejando sus productos sin proveedor
func (uc *ProveedorUseCase) Eliminar(ctx context.Context, id int) error {
	if err := uc.proveedorRepo.Eliminar(ctx, id); err != nil {
		return err
	}
	log.Printf("🗑️  Proveedor eliminado: %d", id)
	return nil
}

// Listar retorna todos los proveedores
func (uc *ProveedorUseCase) Listar(ctx context.Context) ([]*entity.Proveedor, error) {
	return uc.proveedorRepo.ObtenerTodos(ctx)
}

// ObtenerPorID retorna un proveedor por su id
func (uc *ProveedorUseCase) ObtenerPorID(ctx context.Context, id int) (*entity.Proveedor, error) {
	return uc.proveedorRepo.ObtenerPorID(ctx, id)
}

// Buscar busca proveedores por nombre parcial
func (uc *ProveedorUseCase) Buscar(ctx context.Context, termino string) ([]*entity.Proveedor, error) {
	return uc.proveedorRepo.BuscarPorNombre(ctx, termino)
}

func proveedorDesdeRequest(req *ProveedorRequest) *entity.Proveedor {
	return &entity.Proveedor{
		Nombre:            req.Nombre,
		Contacto:          req.Contacto,
		Direccion:         req.Direccion,
		Telefono:          req.Telefono,
		Correo:            req.Correo,
		ProductosVendidos: req.ProductosVendidos,
	}
}
