package usecase

import (
	"context"
	"fmt"
	"log"

	catalogport "github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/response"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/port"
)

// ActualizarVentaUseCase caso de uso para corregir una venta ya registrada.
// El stock de los detalles anteriores se restaura y el de los nuevos se
// descuenta en la misma transacción.
type ActualizarVentaUseCase struct {
	ventaRepo    port.VentaRepository
	productoRepo catalogport.ProductoRepository
}

// NewActualizarVentaUseCase crea una nueva instancia del caso de uso
func NewActualizarVentaUseCase(
	ventaRepo port.VentaRepository,
	productoRepo catalogport.ProductoRepository,
) *ActualizarVentaUseCase {
	return &ActualizarVentaUseCase{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
	}
}

// Execute reemplaza los detalles de la venta con los items del request
func (uc *ActualizarVentaUseCase) Execute(ctx context.Context, idVenta int, req *request.VentaRequest) (*response.VentaResponse, error) {
	log.Printf("🔄 Actualizando venta %d - Items: %d", idVenta, len(req.Items))

	metodoPago := entity.MetodoPago(req.MetodoPago)
	if !metodoPago.Valido() {
		return nil, entity.ErrMetodoPagoInvalido
	}
	if len(req.Items) == 0 {
		return nil, entity.ErrCarritoVacio
	}

	// La venta debe existir y conservar su cliente original salvo que el
	// request traiga uno nuevo
	actual, err := uc.ventaRepo.ObtenerPorID(ctx, idVenta)
	if err != nil {
		return nil, err
	}

	idCliente := actual.IdCliente
	if req.IdCliente > 0 {
		idCliente = req.IdCliente
	}

	detalles := make([]entity.DetalleVenta, 0, len(req.Items))
	for _, item := range req.Items {
		producto, err := uc.productoRepo.ObtenerPorID(ctx, item.IdProducto)
		if err != nil {
			return nil, fmt.Errorf("producto %d: %w", item.IdProducto, entity.ErrProductoNoEncontrado)
		}

		detalles = append(detalles, entity.DetalleVenta{
			IdVenta:           idVenta,
			IdProducto:        producto.IdProducto,
			ProductoNombre:    producto.Nombre,
			Cantidad:          item.Cantidad,
			PrecioUnitario:    producto.Precio,
			DescuentoAplicado: producto.Descuento,
		})
	}

	venta := &entity.Venta{
		IdVenta:    idVenta,
		IdCliente:  idCliente,
		MetodoPago: metodoPago,
		Detalles:   detalles,
	}
	venta.Total = venta.CalcularTotal()

	if err := venta.Validar(); err != nil {
		return nil, err
	}

	if err := uc.ventaRepo.Actualizar(ctx, venta); err != nil {
		log.Printf("❌ Error actualizando venta %d: %v", idVenta, err)
		return nil, err
	}

	// Releer para traer los nombres y la fecha tal como quedaron
	actualizada, err := uc.ventaRepo.ObtenerPorID(ctx, idVenta)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Venta %d actualizada - Total: %s", idVenta, actualizada.Total.StringFixed(2))

	resp := response.FromVenta(actualizada)
	return &resp, nil
}
