package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogentity "github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"
	clienteentity "github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
)

// ventaRepoEnMemoria persiste ventas en memoria aplicando la misma regla
// de stock que la transacción real: o descuenta todo o no descuenta nada.
type ventaRepoEnMemoria struct {
	productos map[int]*catalogentity.Producto
	ventas    map[int]*entity.Venta
	siguiente int
}

func (r *ventaRepoEnMemoria) Registrar(_ context.Context, venta *entity.Venta) error {
	for i := range venta.Detalles {
		p, ok := r.productos[venta.Detalles[i].IdProducto]
		if !ok || p.Stock < venta.Detalles[i].Cantidad {
			return entity.ErrStockInsuficiente
		}
	}
	for i := range venta.Detalles {
		r.productos[venta.Detalles[i].IdProducto].Stock -= venta.Detalles[i].Cantidad
	}
	venta.IdVenta = r.siguiente
	venta.Fecha = time.Now()
	r.siguiente++
	r.ventas[venta.IdVenta] = venta
	return nil
}

func (r *ventaRepoEnMemoria) Actualizar(_ context.Context, venta *entity.Venta) error {
	r.ventas[venta.IdVenta] = venta
	return nil
}

func (r *ventaRepoEnMemoria) Eliminar(_ context.Context, id int) error {
	delete(r.ventas, id)
	return nil
}

func (r *ventaRepoEnMemoria) Matching(_ context.Context, _ criteria.Criteria) ([]*entity.Venta, int, error) {
	out := make([]*entity.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, v)
	}
	return out, len(out), nil
}

func (r *ventaRepoEnMemoria) ObtenerPorID(_ context.Context, id int) (*entity.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, entity.ErrVentaNoEncontrada
	}
	return v, nil
}

func (r *ventaRepoEnMemoria) PorCliente(_ context.Context, _ int) ([]*entity.Venta, error) {
	return nil, nil
}

func (r *ventaRepoEnMemoria) PorRangoFechas(_ context.Context, _, _ time.Time) ([]*entity.Venta, error) {
	return nil, nil
}

func (r *ventaRepoEnMemoria) PorMetodoPago(_ context.Context, _ entity.MetodoPago) ([]*entity.Venta, error) {
	return nil, nil
}

func (r *ventaRepoEnMemoria) TotalPorDia(_ context.Context, _, _ time.Time) ([]*entity.ResumenDia, error) {
	return nil, nil
}

func (r *ventaRepoEnMemoria) ContarEnRango(_ context.Context, _, _ time.Time) (int, error) {
	return len(r.ventas), nil
}

// productoRepoEnMemoria sólo implementa las lecturas que usa la venta
type productoRepoEnMemoria struct {
	productos map[int]*catalogentity.Producto
}

func (r *productoRepoEnMemoria) ObtenerPorID(_ context.Context, id int) (*catalogentity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, catalogentity.ErrProductoNoEncontrado
	}
	copia := *p
	return &copia, nil
}

func (r *productoRepoEnMemoria) Crear(_ context.Context, _ *catalogentity.Producto) error {
	return nil
}
func (r *productoRepoEnMemoria) Actualizar(_ context.Context, _ *catalogentity.Producto) error {
	return nil
}
func (r *productoRepoEnMemoria) Eliminar(_ context.Context, _ int) error { return nil }
func (r *productoRepoEnMemoria) Matching(_ context.Context, _ criteria.Criteria) ([]*catalogentity.Producto, int, error) {
	return nil, 0, nil
}
func (r *productoRepoEnMemoria) BuscarPorNombreOBarcode(_ context.Context, _ string) ([]*catalogentity.Producto, error) {
	return nil, nil
}
func (r *productoRepoEnMemoria) BuscarPorBarcode(_ context.Context, _ string) (*catalogentity.Producto, error) {
	return nil, nil
}
func (r *productoRepoEnMemoria) PorCategoria(_ context.Context, _ int) ([]*catalogentity.Producto, error) {
	return nil, nil
}
func (r *productoRepoEnMemoria) StockBajo(_ context.Context, _ int) ([]*catalogentity.Producto, error) {
	return nil, nil
}
func (r *productoRepoEnMemoria) MayorStock(_ context.Context) (*catalogentity.Producto, error) {
	return nil, nil
}
func (r *productoRepoEnMemoria) ActualizarStock(_ context.Context, _ int, _ int) error { return nil }
func (r *productoRepoEnMemoria) ActualizarDescuentoDirecto(_ context.Context, _ int, _ float64) error {
	return nil
}

// clienteRepoEnMemoria registra clientes asignando ids consecutivos
type clienteRepoEnMemoria struct {
	clientes  map[int]*clienteentity.Cliente
	siguiente int
}

func (r *clienteRepoEnMemoria) Crear(_ context.Context, cliente *clienteentity.Cliente) error {
	cliente.IdCliente = r.siguiente
	r.siguiente++
	r.clientes[cliente.IdCliente] = cliente
	return nil
}

func (r *clienteRepoEnMemoria) Actualizar(_ context.Context, _ *clienteentity.Cliente) error {
	return nil
}
func (r *clienteRepoEnMemoria) Eliminar(_ context.Context, _ int) error { return nil }
func (r *clienteRepoEnMemoria) ObtenerTodos(_ context.Context) ([]*clienteentity.Cliente, error) {
	return nil, nil
}
func (r *clienteRepoEnMemoria) ObtenerPorID(_ context.Context, id int) (*clienteentity.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, clienteentity.ErrClienteNoEncontrado
	}
	return c, nil
}
func (r *clienteRepoEnMemoria) BuscarPorNombreOCiudad(_ context.Context, _ string) ([]*clienteentity.Cliente, error) {
	return nil, nil
}

type escenarioVenta struct {
	uc        *RegistrarVentaUseCase
	productos map[int]*catalogentity.Producto
	clientes  *clienteRepoEnMemoria
}

func nuevoEscenario() *escenarioVenta {
	productos := map[int]*catalogentity.Producto{
		1: {IdProducto: 1, Nombre: "Playera básica", Precio: decimal.NewFromFloat(150.00), Stock: 5, Descuento: decimal.Zero},
		2: {IdProducto: 2, Nombre: "Pantalón mezclilla", Precio: decimal.NewFromFloat(400.00), Stock: 2, Descuento: decimal.NewFromInt(10)},
	}

	clientes := &clienteRepoEnMemoria{
		clientes:  map[int]*clienteentity.Cliente{1: {IdCliente: 1, Nombre: "María López", Ciudad: "Guadalajara"}},
		siguiente: 2,
	}

	return &escenarioVenta{
		uc: NewRegistrarVentaUseCase(
			&ventaRepoEnMemoria{productos: productos, ventas: make(map[int]*entity.Venta), siguiente: 1},
			&productoRepoEnMemoria{productos: productos},
			clientes,
		),
		productos: productos,
		clientes:  clientes,
	}
}

func TestRegistrarVenta(t *testing.T) {
	esc := nuevoEscenario()

	resp, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		IdCliente:  1,
		MetodoPago: "Efectivo",
		Items: []request.ItemVentaRequest{
			{IdProducto: 1, Cantidad: 2}, // 300.00
			{IdProducto: 2, Cantidad: 1}, // 360.00 con 10% de descuento
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "María López", resp.Cliente)
	assert.Equal(t, "660.00", resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "360.00", resp.Items[1].Subtotal)

	// El stock quedó descontado
	assert.Equal(t, 3, esc.productos[1].Stock)
	assert.Equal(t, 1, esc.productos[2].Stock)
}

func TestRegistrarVentaRegistraClienteNuevo(t *testing.T) {
	esc := nuevoEscenario()

	resp, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		Cliente:    &request.ClienteNuevoRequest{Nombre: "Juan Pérez", Ciudad: "Zapopan"},
		MetodoPago: "Tarjeta",
		Items:      []request.ItemVentaRequest{{IdProducto: 1, Cantidad: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Juan Pérez", resp.Cliente)
	assert.Equal(t, 2, resp.IdCliente)
	assert.Equal(t, "Juan Pérez", esc.clientes.clientes[2].Nombre)
}

func TestRegistrarVentaSinClienteUsaPublicoGeneral(t *testing.T) {
	esc := nuevoEscenario()

	resp, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		MetodoPago: "Efectivo",
		Items:      []request.ItemVentaRequest{{IdProducto: 1, Cantidad: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Público general", resp.Cliente)
}

func TestRegistrarVentaRechazaStockInsuficiente(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		IdCliente:  1,
		MetodoPago: "Efectivo",
		Items:      []request.ItemVentaRequest{{IdProducto: 2, Cantidad: 3}},
	})
	assert.ErrorIs(t, err, entity.ErrStockInsuficiente)

	// El stock no se tocó
	assert.Equal(t, 2, esc.productos[2].Stock)
}

func TestRegistrarVentaRechazaMetodoPagoInvalido(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		IdCliente:  1,
		MetodoPago: "Cheque",
		Items:      []request.ItemVentaRequest{{IdProducto: 1, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, entity.ErrMetodoPagoInvalido)
}

func TestRegistrarVentaRechazaCarritoVacio(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		IdCliente:  1,
		MetodoPago: "Efectivo",
	})
	assert.ErrorIs(t, err, entity.ErrCarritoVacio)
}

func TestRegistrarVentaRechazaProductoInexistente(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		IdCliente:  1,
		MetodoPago: "Efectivo",
		Items:      []request.ItemVentaRequest{{IdProducto: 99, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, entity.ErrProductoNoEncontrado)
}

func TestRegistrarVentaRechazaClienteInexistente(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.Execute(context.Background(), &request.VentaRequest{
		IdCliente:  99,
		MetodoPago: "Efectivo",
		Items:      []request.ItemVentaRequest{{IdProducto: 1, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, entity.ErrClienteNoResuelto)
}
