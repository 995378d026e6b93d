package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/testhelpers"
)

// escenarioVentas deja la base con un cliente y dos productos de stock conocido
type escenarioVentas struct {
	db         *sql.DB
	repo       port.VentaRepository
	idCliente  int
	idPlayera  int // stock 10
	idPantalon int // stock 3
}

func nuevoEscenarioVentas(t *testing.T) *escenarioVentas {
	t.Helper()

	db := testhelpers.AbrirDB(t)
	testhelpers.LimpiarTablas(t, db, "detalle_venta", "ventas", "clientes", "productos")

	e := &escenarioVentas{db: db, repo: NewVentaPostgresRepository(db)}

	err := db.QueryRow(
		`INSERT INTO clientes (nombre, ciudad) VALUES ('María López', 'Guadalajara') RETURNING id_cliente`,
	).Scan(&e.idCliente)
	require.NoError(t, err)

	err = db.QueryRow(
		`INSERT INTO productos (nombre, precio, stock) VALUES ('Playera básica', 150.00, 10) RETURNING id_producto`,
	).Scan(&e.idPlayera)
	require.NoError(t, err)

	err = db.QueryRow(
		`INSERT INTO productos (nombre, precio, stock) VALUES ('Pantalón de mezclilla', 400.00, 3) RETURNING id_producto`,
	).Scan(&e.idPantalon)
	require.NoError(t, err)

	return e
}

func (e *escenarioVentas) stockDe(t *testing.T, idProducto int) int {
	t.Helper()

	var stock int
	err := e.db.QueryRow(`SELECT stock FROM productos WHERE id_producto = $1`, idProducto).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func (e *escenarioVentas) ventaDePrueba(detalles ...entity.DetalleVenta) *entity.Venta {
	venta := &entity.Venta{
		IdCliente:  e.idCliente,
		MetodoPago: entity.MetodoPagoEfectivo,
		Detalles:   detalles,
	}
	venta.Total = venta.CalcularTotal()
	return venta
}

func detalle(idProducto, cantidad int, precio string) entity.DetalleVenta {
	return entity.DetalleVenta{
		IdProducto:     idProducto,
		Cantidad:       cantidad,
		PrecioUnitario: decimal.RequireFromString(precio),
	}
}

func TestRegistrarVentaDescuentaStock(t *testing.T) {
	e := nuevoEscenarioVentas(t)
	ctx := context.Background()

	venta := e.ventaDePrueba(
		detalle(e.idPlayera, 2, "150.00"),
		detalle(e.idPantalon, 1, "400.00"),
	)

	require.NoError(t, e.repo.Registrar(ctx, venta))
	require.NotZero(t, venta.IdVenta)

	assert.Equal(t, 8, e.stockDe(t, e.idPlayera))
	assert.Equal(t, 2, e.stockDe(t, e.idPantalon))

	guardada, err := e.repo.ObtenerPorID(ctx, venta.IdVenta)
	require.NoError(t, err)
	assert.Equal(t, "María López", guardada.ClienteNombre)
	assert.Len(t, guardada.Detalles, 2)
	assert.True(t, guardada.Total.Equal(decimal.RequireFromString("700.00")))
}

func TestRegistrarVentaSinStockNoDejaNada(t *testing.T) {
	e := nuevoEscenarioVentas(t)
	ctx := context.Background()

	// La segunda línea excede el stock: la primera tampoco debe quedar
	venta := e.ventaDePrueba(
		detalle(e.idPlayera, 2, "150.00"),
		detalle(e.idPantalon, 5, "400.00"),
	)

	err := e.repo.Registrar(ctx, venta)
	require.ErrorIs(t, err, entity.ErrStockInsuficiente)

	assert.Equal(t, 10, e.stockDe(t, e.idPlayera))
	assert.Equal(t, 3, e.stockDe(t, e.idPantalon))

	var ventas, detalles int
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM ventas`).Scan(&ventas))
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM detalle_venta`).Scan(&detalles))
	assert.Zero(t, ventas)
	assert.Zero(t, detalles)
}

func TestActualizarVentaReajustaStock(t *testing.T) {
	e := nuevoEscenarioVentas(t)
	ctx := context.Background()

	venta := e.ventaDePrueba(detalle(e.idPlayera, 4, "150.00"))
	require.NoError(t, e.repo.Registrar(ctx, venta))
	require.Equal(t, 6, e.stockDe(t, e.idPlayera))

	// La corrección baja la cantidad: el stock recupera la diferencia
	venta.Detalles = []entity.DetalleVenta{detalle(e.idPlayera, 1, "150.00")}
	venta.Total = venta.CalcularTotal()
	require.NoError(t, e.repo.Actualizar(ctx, venta))

	assert.Equal(t, 9, e.stockDe(t, e.idPlayera))

	guardada, err := e.repo.ObtenerPorID(ctx, venta.IdVenta)
	require.NoError(t, err)
	require.Len(t, guardada.Detalles, 1)
	assert.Equal(t, 1, guardada.Detalles[0].Cantidad)
}

func TestEliminarVentaRestauraStock(t *testing.T) {
	e := nuevoEscenarioVentas(t)
	ctx := context.Background()

	venta := e.ventaDePrueba(
		detalle(e.idPlayera, 3, "150.00"),
		detalle(e.idPantalon, 2, "400.00"),
	)
	require.NoError(t, e.repo.Registrar(ctx, venta))

	require.NoError(t, e.repo.Eliminar(ctx, venta.IdVenta))

	assert.Equal(t, 10, e.stockDe(t, e.idPlayera))
	assert.Equal(t, 3, e.stockDe(t, e.idPantalon))

	_, err := e.repo.ObtenerPorID(ctx, venta.IdVenta)
	assert.ErrorIs(t, err, entity.ErrVentaNoEncontrada)
}

func TestMatchingFiltraYPagina(t *testing.T) {
	e := nuevoEscenarioVentas(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		venta := e.ventaDePrueba(detalle(e.idPlayera, 1, "150.00"))
		require.NoError(t, e.repo.Registrar(ctx, venta))
	}
	conTarjeta := e.ventaDePrueba(detalle(e.idPantalon, 1, "400.00"))
	conTarjeta.MetodoPago = entity.MetodoPagoTarjeta
	require.NoError(t, e.repo.Registrar(ctx, conTarjeta))

	// Filtro por método de pago
	filtro := criteria.NewCriteria(
		criteria.NewFilters(criteria.NewFilter("v.metodo_pago", criteria.OpEqual, "Efectivo")),
		criteria.Order{}, nil, nil)

	ventas, total, err := e.repo.Matching(ctx, filtro)
	require.NoError(t, err)
	assert.Len(t, ventas, 3)
	assert.Equal(t, 3, total)

	// Paginación: una página de 2 deja el total sin recortar
	paginado := criteria.NewCriteriaBuilder().WithPagination(2, 0).Build()
	ventas, total, err = e.repo.Matching(ctx, paginado)
	require.NoError(t, err)
	assert.Len(t, ventas, 2)
	assert.Equal(t, 4, total)
}

func TestTotalPorDiaAgrupaLasVentas(t *testing.T) {
	e := nuevoEscenarioVentas(t)
	ctx := context.Background()

	hoy := time.Now()
	for i := 0; i < 2; i++ {
		venta := e.ventaDePrueba(detalle(e.idPlayera, 1, "150.00"))
		require.NoError(t, e.repo.Registrar(ctx, venta))
	}

	resumen, err := e.repo.TotalPorDia(ctx, hoy.AddDate(0, 0, -1), hoy.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, resumen, 1)
	assert.Equal(t, 2, resumen[0].NumVentas)
	assert.True(t, resumen[0].Total.Equal(decimal.RequireFromString("300.00")))
}
