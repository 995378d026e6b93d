package usecase

import (
	"context"
	"fmt"
	"log"

	catalogport "github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/port"
	clienteentity "github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/entity"
	clienteport "github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/response"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/metrics"
)

// RegistrarVentaUseCase caso de uso para registrar una venta de mostrador.
// Arma el carrito con precios y descuentos vigentes, resuelve el cliente y
// confirma la venta en una sola transacción que descuenta stock.
type RegistrarVentaUseCase struct {
	ventaRepo    port.VentaRepository
	productoRepo catalogport.ProductoRepository
	clienteRepo  clienteport.ClienteRepository
}

// NewRegistrarVentaUseCase crea una nueva instancia del caso de uso
func NewRegistrarVentaUseCase(
	ventaRepo port.VentaRepository,
	productoRepo catalogport.ProductoRepository,
	clienteRepo clienteport.ClienteRepository,
) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}
}

// Execute registra la venta:
// 1. Validar request
// 2. Resolver cliente (registrarlo si es nuevo)
// 3. Armar carrito con snapshot de precio y descuento de cada producto
// 4. Persistir venta + detalles + descuento de stock (atómico)
// 5. Retornar DTO listo para imprimir el ticket
func (uc *RegistrarVentaUseCase) Execute(ctx context.Context, req *request.VentaRequest) (*response.VentaResponse, error) {
	log.Printf("🛒 Registrando venta - Items: %d, Método: %s", len(req.Items), req.MetodoPago)

	// ========================================================================
	// PASO 1: VALIDACIONES TÉCNICAS
	// ========================================================================
	metodoPago := entity.MetodoPago(req.MetodoPago)
	if !metodoPago.Valido() {
		metrics.VentasFallidas.Inc()
		return nil, entity.ErrMetodoPagoInvalido
	}
	if len(req.Items) == 0 {
		metrics.VentasFallidas.Inc()
		return nil, entity.ErrCarritoVacio
	}

	// ========================================================================
	// PASO 2: RESOLVER CLIENTE
	// ========================================================================
	idCliente, nombreCliente, err := uc.resolverCliente(ctx, req)
	if err != nil {
		metrics.VentasFallidas.Inc()
		return nil, err
	}

	// ========================================================================
	// PASO 3: ARMAR CARRITO CON PRECIOS Y DESCUENTOS VIGENTES
	// ========================================================================
	carrito := entity.NewCarrito()

	for _, item := range req.Items {
		producto, err := uc.productoRepo.ObtenerPorID(ctx, item.IdProducto)
		if err != nil {
			log.Printf("❌ Producto %d no disponible: %v", item.IdProducto, err)
			metrics.VentasFallidas.Inc()
			return nil, fmt.Errorf("producto %d: %w", item.IdProducto, entity.ErrProductoNoEncontrado)
		}

		err = carrito.Agregar(entity.ProductoCarrito{
			IdProducto: producto.IdProducto,
			Nombre:     producto.Nombre,
			Precio:     producto.Precio,
			Descuento:  producto.Descuento,
			Stock:      producto.Stock,
		}, item.Cantidad)
		if err != nil {
			log.Printf("❌ No se pudo agregar producto %d al carrito: %v", item.IdProducto, err)
			metrics.VentasFallidas.Inc()
			return nil, fmt.Errorf("producto %d: %w", item.IdProducto, err)
		}
	}

	// ========================================================================
	// PASO 4: CONSTRUIR Y PERSISTIR LA VENTA (ATÓMICO)
	// ========================================================================
	venta := ventaDesdeCarrito(carrito, idCliente, metodoPago)
	venta.ClienteNombre = nombreCliente

	if err := venta.Validar(); err != nil {
		metrics.VentasFallidas.Inc()
		return nil, err
	}

	if err := uc.ventaRepo.Registrar(ctx, venta); err != nil {
		log.Printf("❌ Error registrando venta: %v", err)
		metrics.VentasFallidas.Inc()
		return nil, err
	}

	metrics.VentasRegistradas.WithLabelValues(string(metodoPago)).Inc()
	log.Printf("✅ Venta %d registrada - Total: %s, Cliente: %s",
		venta.IdVenta, venta.Total.StringFixed(2), nombreCliente)

	// ========================================================================
	// PASO 5: RESPONDER CON EL TICKET
	// ========================================================================
	resp := response.FromVenta(venta)
	return &resp, nil
}

// resolverCliente retorna el id del cliente de la venta, registrándolo
// cuando viene sin id
func (uc *RegistrarVentaUseCase) resolverCliente(ctx context.Context, req *request.VentaRequest) (int, string, error) {
	if req.IdCliente > 0 {
		cliente, err := uc.clienteRepo.ObtenerPorID(ctx, req.IdCliente)
		if err != nil {
			return 0, "", fmt.Errorf("cliente %d: %w", req.IdCliente, entity.ErrClienteNoResuelto)
		}
		return cliente.IdCliente, cliente.Nombre, nil
	}

	// Cliente nuevo: registrarlo antes de la venta
	nuevo := &clienteentity.Cliente{Nombre: "Público general"}
	if req.Cliente != nil {
		nuevo.Nombre = req.Cliente.Nombre
		nuevo.Direccion = req.Cliente.Direccion
		nuevo.Correo = req.Cliente.Correo
		nuevo.Telefono = req.Cliente.Telefono
		nuevo.Ciudad = req.Cliente.Ciudad
	}
	if nuevo.Nombre == "" {
		nuevo.Nombre = "Público general"
	}

	if err := uc.clienteRepo.Crear(ctx, nuevo); err != nil {
		return 0, "", fmt.Errorf("registrando cliente: %w", entity.ErrClienteNoResuelto)
	}

	log.Printf("👤 Cliente registrado durante la venta: %d - %s", nuevo.IdCliente, nuevo.Nombre)
	return nuevo.IdCliente, nuevo.Nombre, nil
}

// ventaDesdeCarrito congela las líneas del carrito en detalles de venta
func ventaDesdeCarrito(carrito *entity.Carrito, idCliente int, metodoPago entity.MetodoPago) *entity.Venta {
	lineas := carrito.Lineas()
	detalles := make([]entity.DetalleVenta, 0, len(lineas))
	for i := range lineas {
		detalles = append(detalles, entity.DetalleVenta{
			IdProducto:        lineas[i].Producto.IdProducto,
			ProductoNombre:    lineas[i].Producto.Nombre,
			Cantidad:          lineas[i].Cantidad,
			PrecioUnitario:    lineas[i].Producto.Precio,
			DescuentoAplicado: lineas[i].Producto.Descuento,
		})
	}

	venta := &entity.Venta{
		IdCliente:  idCliente,
		MetodoPago: metodoPago,
		Detalles:   detalles,
	}
	venta.Total = venta.CalcularTotal()
	return venta
}
