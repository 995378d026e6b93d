package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SamuelBrambila12/MisTrapitos/src/users/application/usecase"
	"github.com/SamuelBrambila12/MisTrapitos/src/users/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/users/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

// LoginRequest credenciales de acceso
type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" binding:"required"`
	Contrasena    string `json:"contrasena" binding:"required"`
}

// UsuarioController maneja las peticiones HTTP de usuarios y autenticación
type UsuarioController struct {
	usuarioUC  *usecase.UsuarioUseCase
	jwtManager *auth.JWTManager
}

// NewUsuarioController crea una nueva instancia del controlador
func NewUsuarioController(usuarioUC *usecase.UsuarioUseCase, jwtManager *auth.JWTManager) *UsuarioController {
	return &UsuarioController{
		usuarioUC:  usuarioUC,
		jwtManager: jwtManager,
	}
}

// RegisterRoutes registra las rutas del controlador. La gestión de usuarios
// exige sesión de Administrador; el login es público.
func (c *UsuarioController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/login", c.Login)

	usuarios := router.Group("/usuarios")
	usuarios.Use(auth.RequireAuth(c.jwtManager), auth.RequireRol(string(entity.RolAdministrador)))
	{
		usuarios.GET("", c.Listar)
		usuarios.GET("/:id", c.Obtener)
		usuarios.POST("", c.Crear)
		usuarios.PUT("/:id", c.Actualizar)
		usuarios.DELETE("/:id", c.Eliminar)
	}

	log.Println("Rutas Usuarios disponibles:")
	log.Println("  POST   /api/v1/auth/login")
	log.Println("  GET    /api/v1/usuarios  (Administrador)")
	log.Println("  GET    /api/v1/usuarios/:id  (Administrador)")
	log.Println("  POST   /api/v1/usuarios  (Administrador)")
	log.Println("  PUT    /api/v1/usuarios/:id  (Administrador)")
	log.Println("  DELETE /api/v1/usuarios/:id  (Administrador)")
}

// Login autentica al usuario y emite un token JWT con su rol
func (c *UsuarioController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	usuario, err := c.usuarioUC.Autenticar(ctx.Request.Context(), req.NombreUsuario, req.Contrasena)
	if err != nil {
		if errors.Is(err, entity.ErrCredencialesInvalidas) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
			return
		}
		log.Printf("Error autenticando a %s: %v", req.NombreUsuario, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := c.jwtManager.Emitir(usuario)
	if err != nil {
		log.Printf("Error emitiendo token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("🔐 Sesión iniciada: %s (%s)", usuario.NombreUsuario, usuario.Rol)
	ctx.JSON(http.StatusOK, gin.H{
		"token":   token,
		"usuario": usuario,
	})
}

// Crear registra un usuario nuevo
func (c *UsuarioController) Crear(ctx *gin.Context) {
	var req usecase.UsuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	usuario, err := c.usuarioUC.Crear(ctx.Request.Context(), &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, usuario)
}

// Actualizar modifica un usuario existente
func (c *UsuarioController) Actualizar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req usecase.UsuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	usuario, err := c.usuarioUC.Actualizar(ctx.Request.Context(), id, &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, usuario)
}

// Eliminar borra un usuario
func (c *UsuarioController) Eliminar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.usuarioUC.Eliminar(ctx.Request.Context(), id); err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"})
}

// Listar retorna todos los usuarios
func (c *UsuarioController) Listar(ctx *gin.Context) {
	usuarios, err := c.usuarioUC.Listar(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listando usuarios: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       usuarios,
		"total_count": len(usuarios),
	})
}

// Obtener retorna un usuario por id
func (c *UsuarioController) Obtener(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	usuario, err := c.usuarioUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, usuario)
}

func (c *UsuarioController) responderError(ctx *gin.Context, err error) {
	log.Printf("Error en usuarios: %v", err)

	switch {
	case errors.Is(err, entity.ErrUsuarioNoEncontrado):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
	case errors.Is(err, entity.ErrUsuarioDuplicado):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Ya existe un usuario con ese nombre"})
	case errors.Is(err, entity.ErrNombreUsuarioRequerido),
		errors.Is(err, entity.ErrContrasenaCorta),
		errors.Is(err, entity.ErrRolInvalido):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return id, true
}
