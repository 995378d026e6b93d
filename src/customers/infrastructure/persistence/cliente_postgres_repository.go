package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/port"

	"github.com/lib/pq"
)

// ClientePostgresRepository implementa ClienteRepository usando PostgreSQL
type ClientePostgresRepository struct {
	db *sql.DB
}

func NewClientePostgresRepository(db *sql.DB) port.ClienteRepository {
	return &ClientePostgresRepository{db: db}
}

func (r *ClientePostgresRepository) Crear(ctx context.Context, cliente *entity.Cliente) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO clientes (nombre, direccion, correo, telefono, ciudad)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_cliente`,
		cliente.Nombre, cliente.Direccion, cliente.Correo, cliente.Telefono, cliente.Ciudad,
	).Scan(&cliente.IdCliente)

	if err != nil {
		return fmt.Errorf("error insertando cliente: %w", err)
	}

	return nil
}

func (r *ClientePostgresRepository) Actualizar(ctx context.Context, cliente *entity.Cliente) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clientes
		SET nombre = $1, direccion = $2, correo = $3, telefono = $4, ciudad = $5
		WHERE id_cliente = $6`,
		cliente.Nombre, cliente.Direccion, cliente.Correo, cliente.Telefono, cliente.Ciudad,
		cliente.IdCliente)
	if err != nil {
		return fmt.Errorf("error actualizando cliente: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrClienteNoEncontrado
	}

	return nil
}

// Eliminar borra el cliente. La FK de ventas bloquea el borrado cuando el
// cliente tiene historial de compras.
func (r *ClientePostgresRepository) Eliminar(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE id_cliente = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return entity.ErrClienteConVentas
		}
		return fmt.Errorf("error eliminando cliente: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrClienteNoEncontrado
	}

	return nil
}

func (r *ClientePostgresRepository) ObtenerTodos(ctx context.Context) ([]*entity.Cliente, error) {
	query := `SELECT id_cliente, nombre, direccion, correo, telefono, ciudad
		FROM clientes ORDER BY nombre`
	return r.consultar(ctx, query)
}

func (r *ClientePostgresRepository) ObtenerPorID(ctx context.Context, id int) (*entity.Cliente, error) {
	cliente, err := r.escanearUno(r.db.QueryRowContext(ctx, `
		SELECT id_cliente, nombre, direccion, correo, telefono, ciudad
		FROM clientes WHERE id_cliente = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrClienteNoEncontrado
		}
		return nil, fmt.Errorf("error consultando cliente %d: %w", id, err)
	}

	return cliente, nil
}

// BuscarPorNombreOCiudad busca por coincidencia parcial en nombre o ciudad
func (r *ClientePostgresRepository) BuscarPorNombreOCiudad(ctx context.Context, termino string) ([]*entity.Cliente, error) {
	query := `SELECT id_cliente, nombre, direccion, correo, telefono, ciudad
		FROM clientes
		WHERE LOWER(nombre) LIKE LOWER($1) OR LOWER(ciudad) LIKE LOWER($1)
		ORDER BY nombre`
	return r.consultar(ctx, query, "%"+termino+"%")
}

type escaneable interface {
	Scan(dest ...interface{}) error
}

func (r *ClientePostgresRepository) escanearUno(row escaneable) (*entity.Cliente, error) {
	cliente := &entity.Cliente{}
	var direccion, correo, telefono, ciudad sql.NullString

	err := row.Scan(
		&cliente.IdCliente,
		&cliente.Nombre,
		&direccion,
		&correo,
		&telefono,
		&ciudad,
	)
	if err != nil {
		return nil, err
	}

	cliente.Direccion = direccion.String
	cliente.Correo = correo.String
	cliente.Telefono = telefono.String
	cliente.Ciudad = ciudad.String

	return cliente, nil
}

func (r *ClientePostgresRepository) consultar(ctx context.Context, query string, args ...interface{}) ([]*entity.Cliente, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*entity.Cliente
	for rows.Next() {
		cliente, err := r.escanearUno(rows)
		if err != nil {
			return nil, fmt.Errorf("error escaneando cliente: %w", err)
		}
		clientes = append(clientes, cliente)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando clientes: %w", err)
	}

	return clientes, nil
}
