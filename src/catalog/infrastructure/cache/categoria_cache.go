package cache

import (
	"database/sql"
	"log"
	"sync"
)

// Categoria representa una categoría en el cache
type Categoria struct {
	ID     int
	Nombre string
}

// CategoriaCache cache en memoria de categorías para resolver nombres
// sin golpear la base de datos en cada listado de productos
type CategoriaCache struct {
	categorias map[int]Categoria
	mu         sync.RWMutex
}

// NewCategoriaCache crea un nuevo cache de categorías
func NewCategoriaCache() *CategoriaCache {
	return &CategoriaCache{
		categorias: make(map[int]Categoria),
	}
}

// CargarDesdeDB carga todas las categorías desde la base de datos
func (c *CategoriaCache) CargarDesdeDB(db *sql.DB) error {
	log.Println("🔄 Cargando categorías en cache...")

	rows, err := db.Query(`SELECT id_categoria, nombre FROM categorias`)
	if err != nil {
		log.Printf("⚠️  Warning: no se pudieron cargar categorías: %v", err)
		log.Println("⚠️  Continuando sin cache de categorías")
		return err
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.categorias = make(map[int]Categoria)
	count := 0
	for rows.Next() {
		var cat Categoria
		if err := rows.Scan(&cat.ID, &cat.Nombre); err != nil {
			log.Printf("⚠️  Error escaneando categoría: %v", err)
			continue
		}
		c.categorias[cat.ID] = cat
		count++
	}

	log.Printf("✅ %d categorías cargadas en cache", count)
	return nil
}

// Get obtiene una categoría por ID
func (c *CategoriaCache) Get(id int) (Categoria, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cat, ok := c.categorias[id]
	return cat, ok
}

// GetNombre obtiene solo el nombre de una categoría por ID
func (c *CategoriaCache) GetNombre(id int) string {
	cat, ok := c.Get(id)
	if !ok {
		return "Sin categoría"
	}
	return cat.Nombre
}

// Invalidar limpia el cache tras cambios en categorías
func (c *CategoriaCache) Invalidar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categorias = make(map[int]Categoria)
}

// Actualizar inserta o reemplaza una categoría en el cache
func (c *CategoriaCache) Actualizar(cat Categoria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categorias[cat.ID] = cat
}
