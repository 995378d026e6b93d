package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAuth exige un token Bearer válido y deja los claims en el contexto
func RequireAuth(manager *JWTManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization Bearer requerido"})
			return
		}

		claims, err := manager.Validar(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido o expirado"})
			return
		}

		ctx.Set("id_usuario", claims.IdUsuario)
		ctx.Set("nombre_usuario", claims.NombreUsuario)
		ctx.Set("rol", claims.Rol)
		ctx.Next()
	}
}

// RequireRol exige que el usuario autenticado tenga el rol dado
func RequireRol(rol string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString("rol") != rol {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permisos insuficientes"})
			return
		}
		ctx.Next()
	}
}
