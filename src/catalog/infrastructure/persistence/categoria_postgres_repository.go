package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/port"

	"github.com/lib/pq"
)

// CategoriaPostgresRepository implementa CategoriaRepository usando PostgreSQL
type CategoriaPostgresRepository struct {
	db *sql.DB
}

func NewCategoriaPostgresRepository(db *sql.DB) port.CategoriaRepository {
	return &CategoriaPostgresRepository{db: db}
}

func (r *CategoriaPostgresRepository) Crear(ctx context.Context, categoria *entity.Categoria) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categorias (nombre) VALUES ($1) RETURNING id_categoria`,
		categoria.Nombre,
	).Scan(&categoria.IdCategoria)

	if err != nil {
		if esViolacionUnica(err) {
			return entity.ErrCategoriaDuplicada
		}
		return fmt.Errorf("error insertando categoría: %w", err)
	}

	return nil
}

func (r *CategoriaPostgresRepository) Actualizar(ctx context.Context, categoria *entity.Categoria) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categorias SET nombre = $1 WHERE id_categoria = $2`,
		categoria.Nombre, categoria.IdCategoria)
	if err != nil {
		if esViolacionUnica(err) {
			return entity.ErrCategoriaDuplicada
		}
		return fmt.Errorf("error actualizando categoría: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrCategoriaNoEncontrada
	}

	return nil
}

// Eliminar borra la categoría. La FK de productos bloquea el borrado cuando
// todavía existen productos asociados.
func (r *CategoriaPostgresRepository) Eliminar(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categorias WHERE id_categoria = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return entity.ErrCategoriaConProductos
		}
		return fmt.Errorf("error eliminando categoría: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrCategoriaNoEncontrada
	}

	return nil
}

func (r *CategoriaPostgresRepository) ObtenerTodas(ctx context.Context) ([]*entity.Categoria, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id_categoria, nombre FROM categorias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("error consultando categorías: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.Categoria
	for rows.Next() {
		categoria := &entity.Categoria{}
		if err := rows.Scan(&categoria.IdCategoria, &categoria.Nombre); err != nil {
			return nil, fmt.Errorf("error escaneando categoría: %w", err)
		}
		categorias = append(categorias, categoria)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando categorías: %w", err)
	}

	return categorias, nil
}

func (r *CategoriaPostgresRepository) ObtenerPorID(ctx context.Context, id int) (*entity.Categoria, error) {
	categoria := &entity.Categoria{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id_categoria, nombre FROM categorias WHERE id_categoria = $1`, id,
	).Scan(&categoria.IdCategoria, &categoria.Nombre)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCategoriaNoEncontrada
		}
		return nil, fmt.Errorf("error consultando categoría %d: %w", id, err)
	}

	return categoria, nil
}
