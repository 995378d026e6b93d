package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/entity"
)

func usuarioDePrueba() *entity.Usuario {
	return &entity.Usuario{
		IdUsuario:     7,
		NombreUsuario: "cajero1",
		Rol:           entity.RolVendedor,
	}
}

func TestEmitirYValidar(t *testing.T) {
	manager := NewJWTManager("secreto-de-prueba", time.Hour)

	token, err := manager.Emitir(usuarioDePrueba())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validar(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.IdUsuario)
	assert.Equal(t, "cajero1", claims.NombreUsuario)
	assert.Equal(t, string(entity.RolVendedor), claims.Rol)
	assert.Equal(t, "7", claims.Subject)
}

func TestValidarRechazaTokenExpirado(t *testing.T) {
	manager := NewJWTManager("secreto-de-prueba", -time.Minute)

	token, err := manager.Emitir(usuarioDePrueba())
	require.NoError(t, err)

	_, err = manager.Validar(token)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestValidarRechazaOtroSecreto(t *testing.T) {
	emisor := NewJWTManager("secreto-a", time.Hour)
	validador := NewJWTManager("secreto-b", time.Hour)

	token, err := emisor.Emitir(usuarioDePrueba())
	require.NoError(t, err)

	_, err = validador.Validar(token)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestValidarRechazaBasura(t *testing.T) {
	manager := NewJWTManager("secreto-de-prueba", time.Hour)

	_, err := manager.Validar("no-es-un-token")
	assert.ErrorIs(t, err, ErrTokenInvalido)

	_, err = manager.Validar("")
	assert.ErrorIs(t, err, ErrTokenInvalido)
}
