package usecase

import (
	"context"
	"log"

	"github.com/SamuelBrambila12/MisTrapitos/src/customers/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/port"
)

// ClienteUseCase casos de uso de gestión de clientes
type ClienteUseCase struct {
	clienteRepo port.ClienteRepository
}

// NewClienteUseCase crea una nueva instancia del caso de uso
func NewClienteUseCase(clienteRepo port.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Crear registra un cliente nuevo
func (uc *ClienteUseCase) Crear(ctx context.Context, req *request.ClienteRequest) (*entity.Cliente, error) {
	cliente := clienteDesdeRequest(req)

	if err := cliente.Validar(); err != nil {
		return nil, err
	}

	if err := uc.clienteRepo.Crear(ctx, cliente); err != nil {
		return nil, err
	}

	log.Printf("✅ Cliente registrado: %d - %s", cliente.IdCliente, cliente.Nombre)
	return cliente, nil
}

// Actualizar modifica un cliente existente
func (uc *ClienteUseCase) Actualizar(ctx context.Context, id int, req *request.ClienteRequest) (*entity.Cliente, error) {
	cliente := clienteDesdeRequest(req)
	cliente.IdCliente = id

	if err := cliente.Validar(); err != nil {
		return nil, err
	}

	if err := uc.clienteRepo.Actualizar(ctx, cliente); err != nil {
		return nil, err
	}

	return cliente, nil
}

// Eliminar borra un cliente sin ventas asociadas
func (uc *ClienteUseCase) Eliminar(ctx context.Context, id int) error {
	if err := uc.clienteRepo.Eliminar(ctx, id); err != nil {
		return err
	}
	log.Printf("🗑️  Cliente eliminado: %d", id)
	return nil
}

// Listar retorna todos los clientes
func (uc *ClienteUseCase) Listar(ctx context.Context) ([]*entity.Cliente, error) {
	return uc.clienteRepo.ObtenerTodos(ctx)
}

// ObtenerPorID retorna un cliente por su id
func (uc *ClienteUseCase) ObtenerPorID(ctx context.Context, id int) (*entity.Cliente, error) {
	return uc.clienteRepo.ObtenerPorID(ctx, id)
}

// Buscar busca clientes por nombre o ciudad
func (uc *ClienteUseCase) Buscar(ctx context.Context, termino string) ([]*entity.Cliente, error) {
	return uc.clienteRepo.BuscarPorNombreOCiudad(ctx, termino)
}

func clienteDesdeRequest(req *request.ClienteRequest) *entity.Cliente {
	return &entity.Cliente{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Correo:    req.Correo,
		Telefono:  req.Telefono,
		Ciudad:    req.Ciudad,
	}
}
