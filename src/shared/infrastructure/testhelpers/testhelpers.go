// Package testhelpers arma la infraestructura de los tests de integración
// contra PostgreSQL. Los tests que lo usan se saltan cuando no hay una base
// de datos disponible, para que la suite corra igual sin entorno.
package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/database"
)

// connString arma la cadena de conexión de la base de pruebas. La base por
// defecto es mistrapitos_test, nunca la de desarrollo: los tests truncan
// tablas.
func connString() string {
	_ = godotenv.Load("../../../../.env")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "mistrapitos_test"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// AbrirDB abre la base de pruebas con el esquema migrado, o se salta el test
// si no hay base disponible. La conexión se cierra al terminar el test.
func AbrirDB(tb testing.TB) *sql.DB {
	tb.Helper()

	db, err := sql.Open("postgres", connString())
	if err != nil {
		tb.Skipf("Base de datos de pruebas no disponible: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		tb.Skipf("Base de datos de pruebas no disponible: %v", err)
	}

	if err := database.Migrate(db, "file://"+migracionesDir(tb)); err != nil {
		db.Close()
		tb.Fatalf("Error aplicando migraciones: %v", err)
	}

	tb.Cleanup(func() { db.Close() })
	return db
}

// LimpiarTablas trunca las tablas indicadas reiniciando sus secuencias,
// dejando la base lista para el siguiente test
func LimpiarTablas(tb testing.TB, db *sql.DB, tablas ...string) {
	tb.Helper()

	for _, tabla := range tablas {
		if _, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", tabla)); err != nil {
			tb.Fatalf("Error limpiando la tabla %s: %v", tabla, err)
		}
	}
}

// migracionesDir sube desde el directorio del test hasta encontrar
// database/migrations
func migracionesDir(tb testing.TB) string {
	tb.Helper()

	dir, err := os.Getwd()
	if err != nil {
		tb.Fatalf("Error obteniendo el directorio de trabajo: %v", err)
	}

	for {
		candidato := filepath.Join(dir, "database", "migrations")
		if info, err := os.Stat(candidato); err == nil && info.IsDir() {
			return candidato
		}

		padre := filepath.Dir(dir)
		if padre == dir {
			tb.Fatal("No se encontró el directorio database/migrations")
		}
		dir = padre
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
