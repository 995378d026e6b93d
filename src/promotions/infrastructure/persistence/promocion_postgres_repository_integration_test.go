package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/testhelpers"
)

type escenarioPromociones struct {
	db         *sql.DB
	repo       port.PromocionRepository
	idProducto int
}

func nuevoEscenarioPromociones(t *testing.T) *escenarioPromociones {
	t.Helper()

	db := testhelpers.AbrirDB(t)
	testhelpers.LimpiarTablas(t, db, "promociones", "productos")

	e := &escenarioPromociones{db: db, repo: NewPromocionPostgresRepository(db)}

	err := db.QueryRow(
		`INSERT INTO productos (nombre, precio, stock) VALUES ('Vestido floral', 650.00, 8) RETURNING id_producto`,
	).Scan(&e.idProducto)
	require.NoError(t, err)

	return e
}

func (e *escenarioPromociones) descuentosDe(t *testing.T, idProducto int) (directo, efectivo float64) {
	t.Helper()

	err := e.db.QueryRow(
		`SELECT descuento_directo, descuento FROM productos WHERE id_producto = $1`, idProducto,
	).Scan(&directo, &efectivo)
	require.NoError(t, err)
	return directo, efectivo
}

func promocionVigente(idProducto int, porcentaje string) *entity.Promocion {
	hoy := time.Now()
	return &entity.Promocion{
		IdProducto:          idProducto,
		PorcentajeDescuento: decimal.RequireFromString(porcentaje),
		FechaInicio:         hoy.AddDate(0, 0, -1),
		FechaFin:            hoy.AddDate(0, 0, 7),
	}
}

func TestCrearPromocionRecalculaElDescuento(t *testing.T) {
	e := nuevoEscenarioPromociones(t)
	ctx := context.Background()

	require.NoError(t, e.repo.Crear(ctx, promocionVigente(e.idProducto, "20")))

	_, efectivo := e.descuentosDe(t, e.idProducto)
	assert.Equal(t, 20.0, efectivo)
}

func TestEliminarPromocionRegresaElDescuento(t *testing.T) {
	e := nuevoEscenarioPromociones(t)
	ctx := context.Background()

	promocion := promocionVigente(e.idProducto, "20")
	require.NoError(t, e.repo.Crear(ctx, promocion))

	require.NoError(t, e.repo.Eliminar(ctx, promocion.IdPromocion))

	_, efectivo := e.descuentosDe(t, e.idProducto)
	assert.Equal(t, 0.0, efectivo)
}

func TestGuardarPromocionYDescuentoEnUnaSolaOperacion(t *testing.T) {
	e := nuevoEscenarioPromociones(t)
	ctx := context.Background()

	// Alta combinada: descuento directo 15 y promoción temporal 30
	promocion := promocionVigente(e.idProducto, "30")
	require.NoError(t, e.repo.GuardarPromocionYDescuento(ctx, e.idProducto, 15, promocion, nil))
	require.NotZero(t, promocion.IdPromocion)

	directo, efectivo := e.descuentosDe(t, e.idProducto)
	assert.Equal(t, 15.0, directo)
	assert.Equal(t, 30.0, efectivo, "la promoción vigente gana al descuento directo")

	// Upsert sobre la misma promoción
	promocion.PorcentajeDescuento = decimal.RequireFromString("40")
	require.NoError(t, e.repo.GuardarPromocionYDescuento(ctx, e.idProducto, 15, promocion, nil))

	guardada, err := e.repo.ObtenerPorID(ctx, promocion.IdPromocion)
	require.NoError(t, err)
	assert.True(t, guardada.PorcentajeDescuento.Equal(decimal.RequireFromString("40")))

	// Sin porcentaje la promoción se retira y queda el descuento directo
	idRetirar := promocion.IdPromocion
	require.NoError(t, e.repo.GuardarPromocionYDescuento(ctx, e.idProducto, 15, nil, &idRetirar))

	_, err = e.repo.ObtenerPorID(ctx, idRetirar)
	assert.ErrorIs(t, err, entity.ErrPromocionNoEncontrada)

	directo, efectivo = e.descuentosDe(t, e.idProducto)
	assert.Equal(t, 15.0, directo)
	assert.Equal(t, 15.0, efectivo)
}

func TestGuardarPromocionYDescuentoSinProductoNoDejaNada(t *testing.T) {
	e := nuevoEscenarioPromociones(t)
	ctx := context.Background()

	err := e.repo.GuardarPromocionYDescuento(ctx, 9999, 10, promocionVigente(9999, "25"), nil)
	require.ErrorIs(t, err, entity.ErrProductoNoExiste)

	var promociones int
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM promociones`).Scan(&promociones))
	assert.Zero(t, promociones)
}

func TestRecomputarTodosRetiraPromocionesVencidas(t *testing.T) {
	e := nuevoEscenarioPromociones(t)
	ctx := context.Background()

	// Promoción ya vencida con el descuento denormalizado aún aplicado,
	// como queda la base cuando una promoción expira sin recálculo
	hoy := time.Now()
	_, err := e.db.Exec(`
		INSERT INTO promociones (id_producto, porcentaje_descuento, fecha_inicio, fecha_fin)
		VALUES ($1, 35, $2, $3)`,
		e.idProducto, hoy.AddDate(0, 0, -30), hoy.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = e.db.Exec(`UPDATE productos SET descuento = 35 WHERE id_producto = $1`, e.idProducto)
	require.NoError(t, err)

	corregidos, err := e.repo.RecomputarTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, corregidos)

	_, efectivo := e.descuentosDe(t, e.idProducto)
	assert.Equal(t, 0.0, efectivo)
}
