package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/entity"
)

// usuarioRepoEnMemoria implementación en memoria del puerto para pruebas
type usuarioRepoEnMemoria struct {
	usuarios  map[int]*entity.Usuario
	siguiente int
}

func nuevoRepoEnMemoria() *usuarioRepoEnMemoria {
	return &usuarioRepoEnMemoria{usuarios: make(map[int]*entity.Usuario), siguiente: 1}
}

func (r *usuarioRepoEnMemoria) Crear(_ context.Context, usuario *entity.Usuario) error {
	for _, u := range r.usuarios {
		if u.NombreUsuario == usuario.NombreUsuario {
			return entity.ErrUsuarioDuplicado
		}
	}
	usuario.IdUsuario = r.siguiente
	r.siguiente++
	copia := *usuario
	r.usuarios[usuario.IdUsuario] = &copia
	return nil
}

func (r *usuarioRepoEnMemoria) Actualizar(_ context.Context, usuario *entity.Usuario) error {
	if _, ok := r.usuarios[usuario.IdUsuario]; !ok {
		return entity.ErrUsuarioNoEncontrado
	}
	copia := *usuario
	r.usuarios[usuario.IdUsuario] = &copia
	return nil
}

func (r *usuarioRepoEnMemoria) Eliminar(_ context.Context, id int) error {
	if _, ok := r.usuarios[id]; !ok {
		return entity.ErrUsuarioNoEncontrado
	}
	delete(r.usuarios, id)
	return nil
}

func (r *usuarioRepoEnMemoria) ObtenerTodos(_ context.Context) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		copia := *u
		out = append(out, &copia)
	}
	return out, nil
}

func (r *usuarioRepoEnMemoria) ObtenerPorID(_ context.Context, id int) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, entity.ErrUsuarioNoEncontrado
	}
	copia := *u
	return &copia, nil
}

func (r *usuarioRepoEnMemoria) ObtenerPorNombreUsuario(_ context.Context, nombreUsuario string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.NombreUsuario == nombreUsuario {
			copia := *u
			return &copia, nil
		}
	}
	return nil, entity.ErrUsuarioNoEncontrado
}

func TestCrearHasheaLaContrasena(t *testing.T) {
	uc := NewUsuarioUseCase(nuevoRepoEnMemoria())

	usuario, err := uc.Crear(context.Background(), &UsuarioRequest{
		NombreUsuario: "admin",
		Contrasena:    "contrasena-segura",
		Rol:           string(entity.RolAdministrador),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "contrasena-segura", usuario.Contrasena)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte("contrasena-segura")))
}

func TestCrearRechazaContrasenaCorta(t *testing.T) {
	uc := NewUsuarioUseCase(nuevoRepoEnMemoria())

	_, err := uc.Crear(context.Background(), &UsuarioRequest{
		NombreUsuario: "admin",
		Contrasena:    "corta",
		Rol:           string(entity.RolAdministrador),
	})
	assert.ErrorIs(t, err, entity.ErrContrasenaCorta)
}

func TestCrearRechazaNombreDuplicado(t *testing.T) {
	uc := NewUsuarioUseCase(nuevoRepoEnMemoria())
	req := &UsuarioRequest{NombreUsuario: "admin", Contrasena: "contrasena-segura", Rol: string(entity.RolAdministrador)}

	_, err := uc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Crear(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrUsuarioDuplicado)
}

func TestAutenticar(t *testing.T) {
	uc := NewUsuarioUseCase(nuevoRepoEnMemoria())
	_, err := uc.Crear(context.Background(), &UsuarioRequest{
		NombreUsuario: "cajero1",
		Contrasena:    "contrasena-segura",
		Rol:           string(entity.RolVendedor),
	})
	require.NoError(t, err)

	usuario, err := uc.Autenticar(context.Background(), "cajero1", "contrasena-segura")
	require.NoError(t, err)
	assert.Equal(t, "cajero1", usuario.NombreUsuario)
	assert.Equal(t, entity.RolVendedor, usuario.Rol)
}

// Usuario inexistente y contraseña incorrecta deben devolver exactamente
// el mismo error para no revelar qué usuarios existen.
func TestAutenticarNoDistingueCausas(t *testing.T) {
	uc := NewUsuarioUseCase(nuevoRepoEnMemoria())
	_, err := uc.Crear(context.Background(), &UsuarioRequest{
		NombreUsuario: "cajero1",
		Contrasena:    "contrasena-segura",
		Rol:           string(entity.RolVendedor),
	})
	require.NoError(t, err)

	_, errContrasena := uc.Autenticar(context.Background(), "cajero1", "equivocada")
	_, errUsuario := uc.Autenticar(context.Background(), "no-existe", "equivocada")

	assert.ErrorIs(t, errContrasena, entity.ErrCredencialesInvalidas)
	assert.ErrorIs(t, errUsuario, entity.ErrCredencialesInvalidas)
	assert.Equal(t, errContrasena, errUsuario)
}

func TestActualizarConservaHashConContrasenaVacia(t *testing.T) {
	uc := NewUsuarioUseCase(nuevoRepoEnMemoria())
	creado, err := uc.Crear(context.Background(), &UsuarioRequest{
		NombreUsuario: "cajero1",
		Contrasena:    "contrasena-segura",
		Rol:           string(entity.RolVendedor),
	})
	require.NoError(t, err)

	actualizado, err := uc.Actualizar(context.Background(), creado.IdUsuario, &UsuarioRequest{
		NombreUsuario: "cajero1",
		Contrasena:    "",
		Rol:           string(entity.RolAdministrador),
	})
	require.NoError(t, err)

	assert.Equal(t, creado.Contrasena, actualizado.Contrasena)
	assert.Equal(t, entity.RolAdministrador, actualizado.Rol)

	// La contraseña original sigue funcionando
	_, err = uc.Autenticar(context.Background(), "cajero1", "contrasena-segura")
	assert.NoError(t, err)
}
