package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
	sqlcriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/criteria"
)

// descontarStockSQL descuenta stock solo si alcanza: cero filas afectadas
// significa stock insuficiente y dispara el rollback de toda la venta.
const descontarStockSQL = `
	UPDATE productos SET stock = stock - $1
	WHERE id_producto = $2 AND stock >= $1
`

const restaurarStockSQL = `
	UPDATE productos SET stock = stock + $1
	WHERE id_producto = $2
`

// VentaPostgresRepository implementa VentaRepository usando PostgreSQL
type VentaPostgresRepository struct {
	db *sql.DB
}

// NewVentaPostgresRepository crea una nueva instancia del repositorio
func NewVentaPostgresRepository(db *sql.DB) port.VentaRepository {
	return &VentaPostgresRepository{db: db}
}

// Registrar persiste la venta completa en una transacción: encabezado,
// detalles y descuento de stock se confirman juntos o no se confirman.
func (r *VentaPostgresRepository) Registrar(ctx context.Context, venta *entity.Venta) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar encabezado de venta
	fecha := venta.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO ventas (id_cliente, fecha, metodo_pago, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id_venta`,
		venta.IdCliente, fecha, string(venta.MetodoPago), venta.Total,
	).Scan(&venta.IdVenta)
	if err != nil {
		return fmt.Errorf("error insertando venta: %w", err)
	}
	venta.Fecha = fecha

	// 2. Insertar detalles descontando stock
	if err := r.insertarDetalles(ctx, tx, venta); err != nil {
		return err
	}

	// Commit transacción
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error confirmando transacción: %w", err)
	}

	return nil
}

// Actualizar reemplaza los detalles de una venta existente. Primero se
// restaura el stock de los detalles anteriores y después se descuenta el
// de los nuevos, todo en la misma transacción.
func (r *VentaPostgresRepository) Actualizar(ctx context.Context, venta *entity.Venta) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	// 1. Verificar que la venta exista
	var existe bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM ventas WHERE id_venta = $1)`, venta.IdVenta,
	).Scan(&existe)
	if err != nil {
		return fmt.Errorf("error consultando venta: %w", err)
	}
	if !existe {
		return entity.ErrVentaNoEncontrada
	}

	// 2. Restaurar stock de los detalles anteriores y borrarlos
	if err := r.restaurarDetalles(ctx, tx, venta.IdVenta); err != nil {
		return err
	}

	// 3. Actualizar encabezado
	_, err = tx.ExecContext(ctx, `
		UPDATE ventas SET id_cliente = $1, metodo_pago = $2, total = $3
		WHERE id_venta = $4`,
		venta.IdCliente, string(venta.MetodoPago), venta.Total, venta.IdVenta)
	if err != nil {
		return fmt.Errorf("error actualizando venta: %w", err)
	}

	// 4. Insertar los detalles nuevos descontando stock
	if err := r.insertarDetalles(ctx, tx, venta); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error confirmando transacción: %w", err)
	}

	return nil
}

// Eliminar anula la venta restaurando el stock vendido
func (r *VentaPostgresRepository) Eliminar(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	// 1. Restaurar stock y borrar detalles
	if err := r.restaurarDetalles(ctx, tx, id); err != nil {
		return err
	}

	// 2. Borrar encabezado
	res, err := tx.ExecContext(ctx, `DELETE FROM ventas WHERE id_venta = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando venta: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrVentaNoEncontrada
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error confirmando transacción: %w", err)
	}

	return nil
}

// insertarDetalles inserta cada detalle descontando su stock dentro de la
// transacción dada
func (r *VentaPostgresRepository) insertarDetalles(ctx context.Context, tx *sql.Tx, venta *entity.Venta) error {
	for i := range venta.Detalles {
		detalle := &venta.Detalles[i]
		detalle.IdVenta = venta.IdVenta

		res, err := tx.ExecContext(ctx, descontarStockSQL, detalle.Cantidad, detalle.IdProducto)
		if err != nil {
			return fmt.Errorf("error descontando stock del producto %d: %w", detalle.IdProducto, err)
		}

		filas, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("error leyendo filas afectadas: %w", err)
		}
		if filas == 0 {
			return fmt.Errorf("producto %d: %w", detalle.IdProducto, entity.ErrStockInsuficiente)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO detalle_venta (id_venta, id_producto, cantidad, precio_unitario, descuento_aplicado)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id_detalle`,
			detalle.IdVenta, detalle.IdProducto, detalle.Cantidad,
			detalle.PrecioUnitario, detalle.DescuentoAplicado,
		).Scan(&detalle.IdDetalle)
		if err != nil {
			return fmt.Errorf("error insertando detalle del producto %d: %w", detalle.IdProducto, err)
		}
	}

	return nil
}

// restaurarDetalles devuelve al inventario el stock de los detalles de una
// venta y los borra, dentro de la transacción dada
func (r *VentaPostgresRepository) restaurarDetalles(ctx context.Context, tx *sql.Tx, idVenta int) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id_producto, cantidad FROM detalle_venta WHERE id_venta = $1`, idVenta)
	if err != nil {
		return fmt.Errorf("error consultando detalles de la venta %d: %w", idVenta, err)
	}

	type devolucion struct {
		idProducto int
		cantidad   int
	}
	var devoluciones []devolucion

	for rows.Next() {
		var d devolucion
		if err := rows.Scan(&d.idProducto, &d.cantidad); err != nil {
			rows.Close()
			return fmt.Errorf("error escaneando detalle: %w", err)
		}
		devoluciones = append(devoluciones, d)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterando detalles: %w", err)
	}

	for _, d := range devoluciones {
		if _, err := tx.ExecContext(ctx, restaurarStockSQL, d.cantidad, d.idProducto); err != nil {
			return fmt.Errorf("error restaurando stock del producto %d: %w", d.idProducto, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM detalle_venta WHERE id_venta = $1`, idVenta); err != nil {
		return fmt.Errorf("error eliminando detalles de la venta %d: %w", idVenta, err)
	}

	return nil
}

const ventaColumnas = `v.id_venta, COALESCE(v.id_cliente, 0), COALESCE(c.nombre, 'Público general'),
		v.fecha, v.metodo_pago, v.total`

const ventaFrom = `FROM ventas v LEFT JOIN clientes c ON v.id_cliente = c.id_cliente`

// Matching retorna los encabezados de venta que cumplen el criteria junto con
// el total sin paginar para el encabezado del listado
func (r *VentaPostgresRepository) Matching(ctx context.Context, crit criteria.Criteria) ([]*entity.Venta, int, error) {
	if crit.Order.IsEmpty() {
		crit.Order = criteria.NewOrder("v.fecha", criteria.DESC)
	}

	converter := sqlcriteria.NewSQLCriteriaConverter()
	query, params := converter.ToSelectSQL(
		fmt.Sprintf(`SELECT %s %s`, ventaColumnas, ventaFrom), crit)

	ventas, err := r.consultar(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countParams := converter.ToCountSQL(`SELECT COUNT(*) `+ventaFrom, crit)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error contando ventas: %w", err)
	}

	return ventas, total, nil
}

// ObtenerPorID retorna la venta con sus detalles
func (r *VentaPostgresRepository) ObtenerPorID(ctx context.Context, id int) (*entity.Venta, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE v.id_venta = $1`, ventaColumnas, ventaFrom)

	venta := &entity.Venta{}
	var metodoPago string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venta.IdVenta,
		&venta.IdCliente,
		&venta.ClienteNombre,
		&venta.Fecha,
		&metodoPago,
		&venta.Total,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrVentaNoEncontrada
		}
		return nil, fmt.Errorf("error consultando venta %d: %w", id, err)
	}
	venta.MetodoPago = entity.MetodoPago(metodoPago)

	detalles, err := r.detallesDeVenta(ctx, id)
	if err != nil {
		return nil, err
	}
	venta.Detalles = detalles

	return venta, nil
}

// PorCliente retorna las ventas de un cliente
func (r *VentaPostgresRepository) PorCliente(ctx context.Context, idCliente int) ([]*entity.Venta, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE v.id_cliente = $1 ORDER BY v.fecha DESC`,
		ventaColumnas, ventaFrom)
	return r.consultar(ctx, query, idCliente)
}

// PorRangoFechas retorna las ventas dentro del rango dado
func (r *VentaPostgresRepository) PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]*entity.Venta, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE v.fecha >= $1 AND v.fecha < $2 ORDER BY v.fecha DESC`,
		ventaColumnas, ventaFrom)
	return r.consultar(ctx, query, desde, hasta)
}

// PorMetodoPago retorna las ventas pagadas con el método dado
func (r *VentaPostgresRepository) PorMetodoPago(ctx context.Context, metodo entity.MetodoPago) ([]*entity.Venta, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE v.metodo_pago = $1 ORDER BY v.fecha DESC`,
		ventaColumnas, ventaFrom)
	return r.consultar(ctx, query, string(metodo))
}

// TotalPorDia agrega el total vendido y el número de ventas por día dentro
// del rango dado
func (r *VentaPostgresRepository) TotalPorDia(ctx context.Context, desde, hasta time.Time) ([]*entity.ResumenDia, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DATE(v.fecha) AS dia, COUNT(*), COALESCE(SUM(v.total), 0)
		FROM ventas v
		WHERE v.fecha >= $1 AND v.fecha < $2
		GROUP BY DATE(v.fecha)
		ORDER BY dia`, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("error consultando totales por día: %w", err)
	}
	defer rows.Close()

	var resumen []*entity.ResumenDia
	for rows.Next() {
		dia := &entity.ResumenDia{}
		if err := rows.Scan(&dia.Dia, &dia.NumVentas, &dia.Total); err != nil {
			return nil, fmt.Errorf("error escaneando resumen diario: %w", err)
		}
		resumen = append(resumen, dia)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando resumen diario: %w", err)
	}

	return resumen, nil
}

// ContarEnRango cuenta las ventas dentro del rango dado
func (r *VentaPostgresRepository) ContarEnRango(ctx context.Context, desde, hasta time.Time) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ventas WHERE fecha >= $1 AND fecha < $2`,
		desde, hasta).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error contando ventas: %w", err)
	}
	return total, nil
}

func (r *VentaPostgresRepository) detallesDeVenta(ctx context.Context, idVenta int) ([]entity.DetalleVenta, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.id_detalle, d.id_venta, d.id_producto, p.nombre,
			d.cantidad, d.precio_unitario, d.descuento_aplicado
		FROM detalle_venta d
		JOIN productos p ON d.id_producto = p.id_producto
		WHERE d.id_venta = $1
		ORDER BY d.id_detalle`, idVenta)
	if err != nil {
		return nil, fmt.Errorf("error consultando detalles de la venta %d: %w", idVenta, err)
	}
	defer rows.Close()

	var detalles []entity.DetalleVenta
	for rows.Next() {
		detalle := entity.DetalleVenta{}
		err := rows.Scan(
			&detalle.IdDetalle,
			&detalle.IdVenta,
			&detalle.IdProducto,
			&detalle.ProductoNombre,
			&detalle.Cantidad,
			&detalle.PrecioUnitario,
			&detalle.DescuentoAplicado,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando detalle: %w", err)
		}
		detalles = append(detalles, detalle)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando detalles: %w", err)
	}

	return detalles, nil
}

func (r *VentaPostgresRepository) consultar(ctx context.Context, query string, args ...interface{}) ([]*entity.Venta, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando ventas: %w", err)
	}
	defer rows.Close()

	var ventas []*entity.Venta
	for rows.Next() {
		venta := &entity.Venta{}
		var metodoPago string
		err := rows.Scan(
			&venta.IdVenta,
			&venta.IdCliente,
			&venta.ClienteNombre,
			&venta.Fecha,
			&metodoPago,
			&venta.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando venta: %w", err)
		}
		venta.MetodoPago = entity.MetodoPago(metodoPago)
		ventas = append(ventas, venta)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando ventas: %w", err)
	}

	return ventas, nil
}
