package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalido token ausente, malformado o expirado
var ErrTokenInvalido = errors.New("token inválido o expirado")

// Claims payload del token con el usuario y su rol
type Claims struct {
	IdUsuario     int    `json:"id_usuario"`
	NombreUsuario string `json:"nombre_usuario"`
	Rol           string `json:"rol"`
	jwt.RegisteredClaims
}

// JWTManager emite y valida los tokens de sesión
type JWTManager struct {
	secret   []byte
	duracion time.Duration
}

// NewJWTManager crea un manager con el secreto compartido
func NewJWTManager(secret string, duracion time.Duration) *JWTManager {
	return &JWTManager{
		secret:   []byte(secret),
		duracion: duracion,
	}
}

// Emitir genera un token firmado para el usuario autenticado
func (m *JWTManager) Emitir(usuario *entity.Usuario) (string, error) {
	ahora := time.Now()
	claims := Claims{
		IdUsuario:     usuario.IdUsuario,
		NombreUsuario: usuario.NombreUsuario,
		Rol:           string(usuario.Rol),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", usuario.IdUsuario),
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(m.duracion)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validar parsea el token y retorna los claims si la firma y la vigencia
// son correctas
func (m *JWTManager) Validar(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}
