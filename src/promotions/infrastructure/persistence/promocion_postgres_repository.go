package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/port"

	"github.com/lib/pq"
)

// recomputarDescuentoSQL recalcula el descuento efectivo de un producto:
// el máximo entre su descuento directo y la mejor promoción vigente hoy.
const recomputarDescuentoSQL = `
	UPDATE productos
	SET descuento = GREATEST(descuento_directo, COALESCE((
		SELECT MAX(porcentaje_descuento) FROM promociones
		WHERE id_producto = productos.id_producto
		  AND CURRENT_DATE BETWEEN fecha_inicio AND fecha_fin
	), 0))
	WHERE id_producto = $1
`

// PromocionPostgresRepository implementa PromocionRepository usando PostgreSQL
type PromocionPostgresRepository struct {
	db *sql.DB
}

func NewPromocionPostgresRepository(db *sql.DB) port.PromocionRepository {
	return &PromocionPostgresRepository{db: db}
}

// Crear inserta la promoción y recalcula el descuento del producto en la
// misma transacción: nunca queda una promoción guardada con el descuento
// del producto desactualizado.
func (r *PromocionPostgresRepository) Crear(ctx context.Context, promocion *entity.Promocion) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO promociones (id_producto, porcentaje_descuento, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4)
		RETURNING id_promocion`,
		promocion.IdProducto, promocion.PorcentajeDescuento,
		promocion.FechaInicio, promocion.FechaFin,
	).Scan(&promocion.IdPromocion)

	if err != nil {
		if esViolacionFK(err) {
			return entity.ErrProductoNoExiste
		}
		return fmt.Errorf("error insertando promoción: %w", err)
	}

	if _, err = tx.ExecContext(ctx, recomputarDescuentoSQL, promocion.IdProducto); err != nil {
		return fmt.Errorf("error recalculando descuento: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error confirmando transacción: %w", err)
	}

	return nil
}

// GuardarPromocionYDescuento actualiza el descuento directo del producto y
// hace upsert o borrado de la promoción temporal en la misma transacción,
// recalculando al final el descuento efectivo. Nada queda a medias: si
// cualquier paso falla, el descuento directo tampoco cambia.
func (r *PromocionPostgresRepository) GuardarPromocionYDescuento(ctx context.Context, idProducto int, descuentoDirecto float64, promocion *entity.Promocion, eliminarPromocion *int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE productos SET descuento_directo = $1 WHERE id_producto = $2`,
		descuentoDirecto, idProducto)
	if err != nil {
		return fmt.Errorf("error actualizando descuento directo: %w", err)
	}
	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrProductoNoExiste
	}

	switch {
	case promocion != nil && promocion.IdPromocion > 0:
		res, err = tx.ExecContext(ctx, `
			UPDATE promociones
			SET porcentaje_descuento = $1, fecha_inicio = $2, fecha_fin = $3
			WHERE id_promocion = $4`,
			promocion.PorcentajeDescuento, promocion.FechaInicio,
			promocion.FechaFin, promocion.IdPromocion)
		if err != nil {
			return fmt.Errorf("error actualizando promoción: %w", err)
		}
		filas, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("error leyendo filas afectadas: %w", err)
		}
		if filas == 0 {
			return entity.ErrPromocionNoEncontrada
		}
	case promocion != nil:
		err = tx.QueryRowContext(ctx, `
			INSERT INTO promociones (id_producto, porcentaje_descuento, fecha_inicio, fecha_fin)
			VALUES ($1, $2, $3, $4)
			RETURNING id_promocion`,
			idProducto, promocion.PorcentajeDescuento,
			promocion.FechaInicio, promocion.FechaFin,
		).Scan(&promocion.IdPromocion)
		if err != nil {
			return fmt.Errorf("error insertando promoción: %w", err)
		}
	case eliminarPromocion != nil:
		// Sin porcentaje la promoción existente se retira; si ya no está,
		// no es un error
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM promociones WHERE id_promocion = $1`, *eliminarPromocion); err != nil {
			return fmt.Errorf("error eliminando promoción: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, recomputarDescuentoSQL, idProducto); err != nil {
		return fmt.Errorf("error recalculando descuento: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error confirmando transacción: %w", err)
	}

	return nil
}

// Actualizar modifica la promoción y recalcula el descuento del producto
// anterior y el nuevo, por si la promoción cambió de producto.
func (r *PromocionPostgresRepository) Actualizar(ctx context.Context, promocion *entity.Promocion) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	var idProductoAnterior int
	err = tx.QueryRowContext(ctx,
		`SELECT id_producto FROM promociones WHERE id_promocion = $1`,
		promocion.IdPromocion,
	).Scan(&idProductoAnterior)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.ErrPromocionNoEncontrada
		}
		return fmt.Errorf("error consultando promoción: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE promociones
		SET id_producto = $1, porcentaje_descuento = $2, fecha_inicio = $3, fecha_fin = $4
		WHERE id_promocion = $5`,
		promocion.IdProducto, promocion.PorcentajeDescuento,
		promocion.FechaInicio, promocion.FechaFin, promocion.IdPromocion)
	if err != nil {
		if esViolacionFK(err) {
			return entity.ErrProductoNoExiste
		}
		return fmt.Errorf("error actualizando promoción: %w", err)
	}

	if _, err = tx.ExecContext(ctx, recomputarDescuentoSQL, idProductoAnterior); err != nil {
		return fmt.Errorf("error recalculando descuento: %w", err)
	}
	if promocion.IdProducto != idProductoAnterior {
		if _, err = tx.ExecContext(ctx, recomputarDescuentoSQL, promocion.IdProducto); err != nil {
			return fmt.Errorf("error recalculando descuento: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error confirmando transacción: %w", err)
	}

	return nil
}

// Eliminar borra la promoción y recalcula el descuento del producto afectado
func (r *PromocionPostgresRepository) Eliminar(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error iniciando transacción: %w", err)
	}
	defer tx.Rollback()

	var idProducto int
	err = tx.QueryRowContext(ctx,
		`SELECT id_producto FROM promociones WHERE id_promocion = $1`, id,
	).Scan(&idProducto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.ErrPromocionNoEncontrada
		}
		return fmt.Errorf("error consultando promoción: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM promociones WHERE id_promocion = $1`, id); err != nil {
		return fmt.Errorf("error eliminando promoción: %w", err)
	}

	if _, err = tx.ExecContext(ctx, recomputarDescuentoSQL, idProducto); err != nil {
		return fmt.Errorf("error recalculando descuento: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error confirmando transacción: %w", err)
	}

	return nil
}

const promocionColumnas = `pr.id_promocion, pr.id_producto, p.nombre,
		pr.porcentaje_descuento, pr.fecha_inicio, pr.fecha_fin`

const promocionFrom = `FROM promociones pr JOIN productos p ON pr.id_producto = p.id_producto`

func (r *PromocionPostgresRepository) ObtenerTodas(ctx context.Context) ([]*entity.Promocion, error) {
	query := fmt.Sprintf(`SELECT %s %s ORDER BY pr.fecha_inicio DESC`, promocionColumnas, promocionFrom)
	return r.consultar(ctx, query)
}

func (r *PromocionPostgresRepository) ObtenerPorID(ctx context.Context, id int) (*entity.Promocion, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE pr.id_promocion = $1`, promocionColumnas, promocionFrom)

	promocion := &entity.Promocion{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&promocion.IdPromocion,
		&promocion.IdProducto,
		&promocion.ProductoNombre,
		&promocion.PorcentajeDescuento,
		&promocion.FechaInicio,
		&promocion.FechaFin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrPromocionNoEncontrada
		}
		return nil, fmt.Errorf("error consultando promoción %d: %w", id, err)
	}

	return promocion, nil
}

// Activas retorna las promociones vigentes hoy
func (r *PromocionPostgresRepository) Activas(ctx context.Context) ([]*entity.Promocion, error) {
	query := fmt.Sprintf(`SELECT %s %s
		WHERE CURRENT_DATE BETWEEN pr.fecha_inicio AND pr.fecha_fin
		ORDER BY pr.fecha_fin ASC`, promocionColumnas, promocionFrom)
	return r.consultar(ctx, query)
}

// PorProducto retorna las promociones de un producto
func (r *PromocionPostgresRepository) PorProducto(ctx context.Context, idProducto int) ([]*entity.Promocion, error) {
	query := fmt.Sprintf(`SELECT %s %s
		WHERE pr.id_producto = $1
		ORDER BY pr.fecha_inicio DESC`, promocionColumnas, promocionFrom)
	return r.consultar(ctx, query, idProducto)
}

// PorRangoFechas retorna las promociones que se traslapan con el rango dado
func (r *PromocionPostgresRepository) PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]*entity.Promocion, error) {
	query := fmt.Sprintf(`SELECT %s %s
		WHERE pr.fecha_inicio <= $2 AND pr.fecha_fin >= $1
		ORDER BY pr.fecha_inicio`, promocionColumnas, promocionFrom)
	return r.consultar(ctx, query, desde, hasta)
}

// VistaPromocionesYDescuentos retorna cada producto con descuento directo,
// mejor promoción vigente y descuento efectivo
func (r *PromocionPostgresRepository) VistaPromocionesYDescuentos(ctx context.Context) ([]*entity.PromocionDescuento, error) {
	query := `
		SELECT p.id_producto, p.nombre, p.descuento_directo,
			COALESCE(MAX(pr.porcentaje_descuento), 0) AS descuento_promocion,
			p.descuento,
			MIN(pr.fecha_inicio), MAX(pr.fecha_fin)
		FROM productos p
		LEFT JOIN promociones pr
			ON pr.id_producto = p.id_producto
			AND CURRENT_DATE BETWEEN pr.fecha_inicio AND pr.fecha_fin
		WHERE p.descuento_directo > 0 OR pr.id_promocion IS NOT NULL
		GROUP BY p.id_producto, p.nombre, p.descuento_directo, p.descuento
		ORDER BY p.nombre
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error consultando vista de promociones y descuentos: %w", err)
	}
	defer rows.Close()

	var filas []*entity.PromocionDescuento
	for rows.Next() {
		fila := &entity.PromocionDescuento{}
		var fechaInicio, fechaFin sql.NullTime
		err := rows.Scan(
			&fila.IdProducto,
			&fila.ProductoNombre,
			&fila.DescuentoDirecto,
			&fila.DescuentoPromocion,
			&fila.DescuentoEfectivo,
			&fechaInicio,
			&fechaFin,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando fila de vista: %w", err)
		}
		if fechaInicio.Valid {
			fila.FechaInicio = &fechaInicio.Time
		}
		if fechaFin.Valid {
			fila.FechaFin = &fechaFin.Time
		}
		filas = append(filas, fila)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando vista: %w", err)
	}

	return filas, nil
}

// RecomputarDescuento recalcula el descuento efectivo de un producto
func (r *PromocionPostgresRepository) RecomputarDescuento(ctx context.Context, idProducto int) error {
	if _, err := r.db.ExecContext(ctx, recomputarDescuentoSQL, idProducto); err != nil {
		return fmt.Errorf("error recalculando descuento del producto %d: %w", idProducto, err)
	}
	return nil
}

// RecomputarTodos recalcula el descuento efectivo de todos los productos.
// Útil tras el vencimiento de promociones, ya que no hay un scheduler que
// las expire automáticamente.
func (r *PromocionPostgresRepository) RecomputarTodos(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE productos
		SET descuento = GREATEST(descuento_directo, COALESCE((
			SELECT MAX(porcentaje_descuento) FROM promociones
			WHERE id_producto = productos.id_producto
			  AND CURRENT_DATE BETWEEN fecha_inicio AND fecha_fin
		), 0))
		WHERE descuento <> GREATEST(descuento_directo, COALESCE((
			SELECT MAX(porcentaje_descuento) FROM promociones
			WHERE id_producto = productos.id_producto
			  AND CURRENT_DATE BETWEEN fecha_inicio AND fecha_fin
		), 0))
	`)
	if err != nil {
		return 0, fmt.Errorf("error recalculando descuentos: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error leyendo filas afectadas: %w", err)
	}

	return int(filas), nil
}

func (r *PromocionPostgresRepository) consultar(ctx context.Context, query string, args ...interface{}) ([]*entity.Promocion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando promociones: %w", err)
	}
	defer rows.Close()

	var promociones []*entity.Promocion
	for rows.Next() {
		promocion := &entity.Promocion{}
		err := rows.Scan(
			&promocion.IdPromocion,
			&promocion.IdProducto,
			&promocion.ProductoNombre,
			&promocion.PorcentajeDescuento,
			&promocion.FechaInicio,
			&promocion.FechaFin,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando promoción: %w", err)
		}
		promociones = append(promociones, promocion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando promociones: %w", err)
	}

	return promociones, nil
}

// esViolacionFK detecta la violación de foreign key de PostgreSQL
func esViolacionFK(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
