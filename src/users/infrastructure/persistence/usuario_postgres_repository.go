package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/port"

	"github.com/lib/pq"
)

// UsuarioPostgresRepository implementa UsuarioRepository usando PostgreSQL
type UsuarioPostgresRepository struct {
	db *sql.DB
}

func NewUsuarioPostgresRepository(db *sql.DB) port.UsuarioRepository {
	return &UsuarioPostgresRepository{db: db}
}

func (r *UsuarioPostgresRepository) Crear(ctx context.Context, usuario *entity.Usuario) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO usuarios (nombre_usuario, contrasena, rol)
		VALUES ($1, $2, $3)
		RETURNING id_usuario`,
		usuario.NombreUsuario, usuario.Contrasena, string(usuario.Rol),
	).Scan(&usuario.IdUsuario)

	if err != nil {
		if esViolacionUnica(err) {
			return entity.ErrUsuarioDuplicado
		}
		return fmt.Errorf("error insertando usuario: %w", err)
	}

	return nil
}

func (r *UsuarioPostgresRepository) Actualizar(ctx context.Context, usuario *entity.Usuario) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usuarios SET nombre_usuario = $1, contrasena = $2, rol = $3
		WHERE id_usuario = $4`,
		usuario.NombreUsuario, usuario.Contrasena, string(usuario.Rol), usuario.IdUsuario)
	if err != nil {
		if esViolacionUnica(err) {
			return entity.ErrUsuarioDuplicado
		}
		return fmt.Errorf("error actualizando usuario: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrUsuarioNoEncontrado
	}

	return nil
}

func (r *UsuarioPostgresRepository) Eliminar(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("error eliminando usuario: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error leyendo filas afectadas: %w", err)
	}
	if filas == 0 {
		return entity.ErrUsuarioNoEncontrado
	}

	return nil
}

func (r *UsuarioPostgresRepository) ObtenerTodos(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id_usuario, nombre_usuario, contrasena, rol FROM usuarios ORDER BY nombre_usuario`)
	if err != nil {
		return nil, fmt.Errorf("error consultando usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		usuario, err := escanearUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("error escaneando usuario: %w", err)
		}
		usuarios = append(usuarios, usuario)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando usuarios: %w", err)
	}

	return usuarios, nil
}

func (r *UsuarioPostgresRepository) ObtenerPorID(ctx context.Context, id int) (*entity.Usuario, error) {
	usuario, err := escanearUsuario(r.db.QueryRowContext(ctx,
		`SELECT id_usuario, nombre_usuario, contrasena, rol FROM usuarios WHERE id_usuario = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUsuarioNoEncontrado
		}
		return nil, fmt.Errorf("error consultando usuario %d: %w", id, err)
	}

	return usuario, nil
}

func (r *UsuarioPostgresRepository) ObtenerPorNombreUsuario(ctx context.Context, nombreUsuario string) (*entity.Usuario, error) {
	usuario, err := escanearUsuario(r.db.QueryRowContext(ctx,
		`SELECT id_usuario, nombre_usuario, contrasena, rol FROM usuarios WHERE nombre_usuario = $1`,
		nombreUsuario))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUsuarioNoEncontrado
		}
		return nil, fmt.Errorf("error consultando usuario %s: %w", nombreUsuario, err)
	}

	return usuario, nil
}

type escaneable interface {
	Scan(dest ...interface{}) error
}

func escanearUsuario(row escaneable) (*entity.Usuario, error) {
	usuario := &entity.Usuario{}
	var rol string

	err := row.Scan(&usuario.IdUsuario, &usuario.NombreUsuario, &usuario.Contrasena, &rol)
	if err != nil {
		return nil, err
	}

	usuario.Rol = entity.Rol(rol)
	return usuario, nil
}

func esViolacionUnica(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
