package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config configuración global del servicio cargada desde variables de entorno
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// URL de la fuente de migraciones, por ejemplo file://database/migrations
	MigrationsPath string

	// Directorio donde se escriben los archivos de reportes generados
	ReportsDir string

	// Secreto para firmar los tokens de sesión
	JWTSecret string

	// Umbral por defecto para el reporte de stock bajo
	StockBajoMinimo int

	PrometheusEnabled bool
}

// Load carga la configuración desde .env (si existe) y variables de entorno
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("✅ Variables de entorno cargadas desde .env")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "mistrapitos_db"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "file://database/migrations"),
		ReportsDir:        getEnv("REPORTS_DIR", "./reportes"),
		JWTSecret:         getEnv("JWT_SECRET", "mistrapitos-dev-secret"),
		StockBajoMinimo:   getEnvInt("STOCK_BAJO_MINIMO", 5),
		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "false") == "true",
	}
}

// ConnString arma la cadena de conexión de PostgreSQL
func (c *Config) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  Valor inválido para %s=%q, usando %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
