package config

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig configuración del módulo API (health check y versión)
type APIConfig struct {
	DB      *sql.DB
	Version string
}

// DefaultAPIConfig devuelve la configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version: "dev",
	}
}

// SetupAPIModule registra los endpoints de health en el router raíz y en el grupo v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(c *gin.Context) {
		status := "ok"
		dbStatus := "disconnected"

		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err == nil {
				dbStatus = "connected"
			} else {
				status = "degraded"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"version":   cfg.Version,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
