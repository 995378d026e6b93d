package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
	sqlcriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/criteria"

	"github.com/lib/pq"
)

const productoColumnas = `p.id_producto, p.nombre, p.descripcion, p.id_categoria, p.id_proveedor,
		p.precio, p.stock, p.sizes, p.colors, p.descuento_directo, p.descuento, p.barcode,
		c.nombre AS categoria_nombre`

const productoFrom = `FROM productos p LEFT JOIN categorias c ON p.id_categoria = c.id_categoria`

// ProductoPostgresRepository implementa ProductoRepository usando PostgreSQL
type ProductoPostgresRepository struct {
	db *sql.DB
}

// NewProductoPostgresRepository crea una nueva instancia del repositorio
func NewProductoPostgresRepository(db *sql.DB) port.ProductoRepository {
	return &ProductoPostgresRepository{db: db}
}

// Crear inserta un producto y captura el id generado
func (r *ProductoPostgresRepository) Crear(ctx context.Context, producto *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, id_categoria, id_proveedor, precio, stock,
			sizes, colors, descuento_directo, descuento, barcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''))
		RETURNING id_producto
	`

	err := r.db.QueryRowContext(ctx, query,
		producto.Nombre,
		producto.Descripcion,
		producto.IdCategoria,
		producto.IdProveedor,
		producto.Precio,
		producto.Stock,
		producto.Sizes,
		producto.Colors,
		producto.DescuentoDirecto,
		producto.Descuento,
		producto.Barcode,
	).Scan(&producto.IdProducto)

	if err != nil {
		if esViolacionUnica(err) {
			return entity.ErrBarcodeDuplicado
		}
		return fmt.Errorf("error insertando producto: %w", err)
	}

	return nil
}

// Actualizar modifica los campos editables de un producto
func (r *ProductoPostgresRepository) Actualizar(ctx context.Context, producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $1, descripcion = $2, id_categoria = $3, id_proveedor = $4, precio = $5,
			stock = $6, sizes = $7, colors = $8, descuento_directo = $9,
			descuento = GREATEST($9, COALESCE((
				SELECT MAX(porcentaje_descuento) FROM promociones
				WHERE id_producto = $11 AND CURRENT_DATE BETWEEN fecha_inicio AND fecha_fin
			), 0)),
			barcode = NULLIF($10, '')
		WHERE id_producto = $11
	`

	res, err := r.db.ExecContext(ctx, query,
		producto.Nombre,
		producto.Descripcion,
		producto.IdCategoria,
		producto.IdProveedor,
		producto.Precio,
		producto.Stock,
		producto.Sizes,
		producto.Colors,
		producto.DescuentoDirecto,
		producto.Barcode,
		producto.IdProducto,
	)
	if err != nil {
		if esViolacionUnica(err) {
			return entity.ErrBarcodeDuplicado
		}
		return fmt.Errorf("error actualizando producto: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrProductoNoEncontrado
	}

	return nil
}

// Eliminar borra el producto por id
func (r *ProductoPostgresRepository) Eliminar(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando producto: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrProductoNoEncontrado
	}

	return nil
}

// Matching retorna los productos que cumplen el criteria con el nombre de su
// categoría, más el total sin paginar para el encabezado del listado
func (r *ProductoPostgresRepository) Matching(ctx context.Context, crit criteria.Criteria) ([]*entity.Producto, int, error) {
	if crit.Order.IsEmpty() {
		crit.Order = criteria.NewOrder("p.nombre", criteria.ASC)
	}

	converter := sqlcriteria.NewSQLCriteriaConverter()
	query, params := converter.ToSelectSQL(
		fmt.Sprintf(`SELECT %s %s`, productoColumnas, productoFrom), crit)

	productos, err := r.consultar(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countParams := converter.ToCountSQL(`SELECT COUNT(*) `+productoFrom, crit)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error contando productos: %w", err)
	}

	return productos, total, nil
}

// ObtenerPorID retorna un producto o ErrProductoNoEncontrado
func (r *ProductoPostgresRepository) ObtenerPorID(ctx context.Context, id int) (*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.id_producto = $1`, productoColumnas, productoFrom)

	producto, err := r.escanearUno(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductoNoEncontrado
		}
		return nil, fmt.Errorf("error consultando producto %d: %w", id, err)
	}

	return producto, nil
}

// BuscarPorNombreOBarcode busca por coincidencia parcial de nombre o barcode exacto
func (r *ProductoPostgresRepository) BuscarPorNombreOBarcode(ctx context.Context, termino string) ([]*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT %s %s
		WHERE LOWER(p.nombre) LIKE LOWER($1) OR p.barcode = $2
		ORDER BY p.nombre`, productoColumnas, productoFrom)

	return r.consultar(ctx, query, "%"+termino+"%", termino)
}

// BuscarPorBarcode busca un producto por su código de barras exacto
func (r *ProductoPostgresRepository) BuscarPorBarcode(ctx context.Context, barcode string) (*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.barcode = $1`, productoColumnas, productoFrom)

	producto, err := r.escanearUno(r.db.QueryRowContext(ctx, query, barcode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductoNoEncontrado
		}
		return nil, fmt.Errorf("error consultando producto por barcode: %w", err)
	}

	return producto, nil
}

// PorCategoria retorna los productos de una categoría
func (r *ProductoPostgresRepository) PorCategoria(ctx context.Context, idCategoria int) ([]*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.id_categoria = $1 ORDER BY p.nombre`, productoColumnas, productoFrom)
	return r.consultar(ctx, query, idCategoria)
}

// StockBajo retorna los productos con stock menor o igual al mínimo
func (r *ProductoPostgresRepository) StockBajo(ctx context.Context, minimo int) ([]*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.stock <= $1 ORDER BY p.stock ASC`, productoColumnas, productoFrom)
	return r.consultar(ctx, query, minimo)
}

// MayorStock retorna el producto con más existencias
func (r *ProductoPostgresRepository) MayorStock(ctx context.Context) (*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT %s %s ORDER BY p.stock DESC LIMIT 1`, productoColumnas, productoFrom)

	producto, err := r.escanearUno(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductoNoEncontrado
		}
		return nil, fmt.Errorf("error consultando producto con mayor stock: %w", err)
	}

	return producto, nil
}

// ActualizarStock suma delta al stock del producto. Con delta negativo la
// condición stock + delta >= 0 evita dejar existencias negativas: cero filas
// afectadas significa stock insuficiente.
func (r *ProductoPostgresRepository) ActualizarStock(ctx context.Context, idProducto int, delta int) error {
	query := `UPDATE productos SET stock = stock + $1 WHERE id_producto = $2 AND stock + $1 >= 0`

	res, err := r.db.ExecContext(ctx, query, delta, idProducto)
	if err != nil {
		return fmt.Errorf("error actualizando stock del producto %d: %w", idProducto, err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrStockInsuficiente
	}

	return nil
}

// ActualizarDescuentoDirecto actualiza el descuento directo y recalcula el
// descuento efectivo contra las promociones vigentes en un solo UPDATE
func (r *ProductoPostgresRepository) ActualizarDescuentoDirecto(ctx context.Context, idProducto int, descuento float64) error {
	query := `
		UPDATE productos
		SET descuento_directo = $1,
			descuento = GREATEST($1, COALESCE((
				SELECT MAX(porcentaje_descuento) FROM promociones
				WHERE id_producto = $2 AND CURRENT_DATE BETWEEN fecha_inicio AND fecha_fin
			), 0))
		WHERE id_producto = $2
	`

	res, err := r.db.ExecContext(ctx, query, descuento, idProducto)
	if err != nil {
		return fmt.Errorf("error actualizando descuento directo: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrProductoNoEncontrado
	}

	return nil
}

type escaneable interface {
	Scan(dest ...interface{}) error
}

func (r *ProductoPostgresRepository) escanearUno(row escaneable) (*entity.Producto, error) {
	producto := &entity.Producto{}
	var descripcion, sizes, colors, barcode, categoriaNombre sql.NullString

	err := row.Scan(
		&producto.IdProducto,
		&producto.Nombre,
		&descripcion,
		&producto.IdCategoria,
		&producto.IdProveedor,
		&producto.Precio,
		&producto.Stock,
		&sizes,
		&colors,
		&producto.DescuentoDirecto,
		&producto.Descuento,
		&barcode,
		&categoriaNombre,
	)
	if err != nil {
		return nil, err
	}

	producto.Descripcion = descripcion.String
	producto.Sizes = sizes.String
	producto.Colors = colors.String
	producto.Barcode = barcode.String
	producto.CategoriaNombre = categoriaNombre.String

	return producto, nil
}

func (r *ProductoPostgresRepository) consultar(ctx context.Context, query string, args ...interface{}) ([]*entity.Producto, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		producto, err := r.escanearUno(rows)
		if err != nil {
			return nil, fmt.Errorf("error escaneando producto: %w", err)
		}
		productos = append(productos, producto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando productos: %w", err)
	}

	return productos, nil
}

// esViolacionUnica detecta la violación de constraint UNIQUE de PostgreSQL
func esViolacionUnica(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
