package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/suppliers/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/suppliers/domain/port"
)

// ProveedorPostgresRepository implementa ProveedorRepository usando PostgreSQL
type ProveedorPostgresRepository struct {
	db *sql.DB
}

func NewProveedorPostgresRepository(db *sql.DB) port.ProveedorRepository {
	return &ProveedorPostgresRepository{db: db}
}

func (r *ProveedorPostgresRepository) Crear(ctx context.Context, proveedor *entity.Proveedor) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO proveedores (nombre, contacto, direccion, telefono, correo, productos_vendidos)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_proveedor`,
		proveedor.Nombre, proveedor.Contacto, proveedor.Direccion,
		proveedor.Telefono, proveedor.Correo, proveedor.ProductosVendidos,
	).Scan(&proveedor.IdProveedor)

	if err != nil {
		return fmt.Errorf("error insertando proveedor: %w", err)
	}

	return nil
}

func (r *ProveedorPostgresRepository) Actualizar(ctx context.Context, proveedor *entity.Proveedor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE proveedores
		SET nombre = $1, contacto = $2, direccion = $3, telefono = $4, correo = $5, productos_vendidos = $6
		WHERE id_proveedor = $7`,
		proveedor.Nombre, proveedor.Contacto, proveedor.Direccion,
		proveedor.Telefono, proveedor.Correo, proveedor.ProductosVendidos,
		proveedor.IdProveedor)
	if err != nil {
		return fmt.Errorf("error actualizando proveedor: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrProveedorNoEncontrado
	}

	return nil
}

// Eliminar borra el proveedor. Los productos asociados quedan sin proveedor
// por el ON DELETE SET NULL de la FK.
func (r *ProveedorPostgresRepository) Eliminar(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM proveedores WHERE id_proveedor = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando proveedor: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrProveedorNoEncontrado
	}

	return nil
}

func (r *ProveedorPostgresRepository) ObtenerTodos(ctx context.Context) ([]*entity.Proveedor, error) {
	query := `SELECT id_proveedor, nombre, contacto, direccion, telefono, correo, productos_vendidos
		FROM proveedores ORDER BY nombre`
	return r.consultar(ctx, query)
}

func (r *ProveedorPostgresRepository) ObtenerPorID(ctx context.Context, id int) (*entity.Proveedor, error) {
	proveedor, err := r.escanearUno(r.db.QueryRowContext(ctx, `
		SELECT id_proveedor, nombre, contacto, direccion, telefono, correo, productos_vendidos
		FROM proveedores WHERE id_proveedor = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProveedorNoEncontrado
		}
		return nil, fmt.Errorf("error consultando proveedor %d: %w", id, err)
	}

	return proveedor, nil
}

func (r *ProveedorPostgresRepository) BuscarPorNombre(ctx context.Context, termino string) ([]*entity.Proveedor, error) {
	query := `SELECT id_proveedor, nombre, contacto, direccion, telefono, correo, productos_vendidos
		FROM proveedores
		WHERE LOWER(nombre) LIKE LOWER($1)
		ORDER BY nombre`
	return r.consultar(ctx, query, "%"+termino+"%")
}

type escaneable interface {
	Scan(dest ...interface{}) error
}

func (r *ProveedorPostgresRepository) escanearUno(row escaneable) (*entity.Proveedor, error) {
	proveedor := &entity.Proveedor{}
	var contacto, direccion, telefono, correo, productosVendidos sql.NullString

	err := row.Scan(
		&proveedor.IdProveedor,
		&proveedor.Nombre,
		&contacto,
		&direccion,
		&telefono,
		&correo,
		&productosVendidos,
	)
	if err != nil {
		return nil, err
	}

	proveedor.Contacto = contacto.String
	proveedor.Direccion = direccion.String
	proveedor.Telefono = telefono.String
	proveedor.Correo = correo.String
	proveedor.ProductosVendidos = productosVendidos.String

	return proveedor, nil
}

func (r *ProveedorPostgresRepository) consultar(ctx context.Context, query string, args ...interface{}) ([]*entity.Proveedor, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando proveedores: %w", err)
	}
	defer rows.Close()

	var proveedores []*entity.Proveedor
	for rows.Next() {
		proveedor, err := r.escanearUno(rows)
		if err != nil {
			return nil, fmt.Errorf("error escaneando proveedor: %w", err)
		}
		proveedores = append(proveedores, proveedor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando proveedores: %w", err)
	}

	return proveedores, nil
}
