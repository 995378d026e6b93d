package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainCriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
)

func TestToSelectSQLSinCriteria(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	sql, params := converter.ToSelectSQL("SELECT * FROM productos", domainCriteria.Criteria{})

	assert.Equal(t, "SELECT * FROM productos", sql)
	assert.Empty(t, params)
}

func TestToSelectSQLConFiltros(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	criteria := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("id_categoria", domainCriteria.OpEqual, 3),
			domainCriteria.NewFilter("stock", domainCriteria.OpGreaterThan, 0),
		),
		domainCriteria.Order{},
		nil, nil,
	)

	sql, params := converter.ToSelectSQL("SELECT * FROM productos", criteria)

	assert.Equal(t, "SELECT * FROM productos WHERE id_categoria = $1 AND stock > $2", sql)
	assert.Equal(t, []interface{}{3, 0}, params)
}

func TestToSelectSQLConLike(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	criteria := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("nombre", domainCriteria.OpLike, "playera"),
		),
		domainCriteria.Order{},
		nil, nil,
	)

	sql, params := converter.ToSelectSQL("SELECT * FROM productos", criteria)

	assert.Equal(t, "SELECT * FROM productos WHERE LOWER(nombre) LIKE LOWER($1)", sql)
	assert.Equal(t, []interface{}{"%playera%"}, params)
}

func TestToSelectSQLConOrdenYPaginacion(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	limit, offset := 10, 20
	criteria := domainCriteria.NewCriteria(
		domainCriteria.Filters{},
		domainCriteria.NewOrder("nombre", domainCriteria.ASC),
		&limit, &offset,
	)

	sql, _ := converter.ToSelectSQL("SELECT * FROM clientes", criteria)

	assert.Equal(t, "SELECT * FROM clientes ORDER BY nombre ASC LIMIT 10 OFFSET 20", sql)
}

func TestToSelectSQLConFiltrosNulos(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	criteria := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("id_proveedor", domainCriteria.OpIsNull, nil),
			domainCriteria.NewFilter("stock", domainCriteria.OpLessThanOrEqual, 5),
		),
		domainCriteria.Order{},
		nil, nil,
	)

	sql, params := converter.ToSelectSQL("SELECT * FROM productos", criteria)

	// El filtro IS NULL no consume placeholder
	assert.Equal(t, "SELECT * FROM productos WHERE id_proveedor IS NULL AND stock <= $1", sql)
	assert.Equal(t, []interface{}{5}, params)
}

func TestToCountSQLIgnoraOrdenYPaginacion(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	limit, offset := 10, 0
	criteria := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("ciudad", domainCriteria.OpEqual, "Guadalajara"),
		),
		domainCriteria.NewOrder("nombre", domainCriteria.DESC),
		&limit, &offset,
	)

	sql, params := converter.ToCountSQL("SELECT COUNT(*) FROM clientes", criteria)

	assert.Equal(t, "SELECT COUNT(*) FROM clientes WHERE ciudad = $1", sql)
	assert.Equal(t, []interface{}{"Guadalajara"}, params)
}

func TestSanitizeWithColumnsTraduceYDescarta(t *testing.T) {
	helper := NewControllerHelper()
	columnas := map[string]string{
		"nombre": "p.nombre",
		"stock":  "p.stock",
	}

	criteria := domainCriteria.NewCriteriaBuilder().
		WithFilter("p.nombre", domainCriteria.OpLike, "playera").
		WithFilter("contrasena", domainCriteria.OpEqual, "x").
		WithOrder("nombre", domainCriteria.ASC).
		Build()

	saneado := helper.SanitizeWithColumns(criteria, columnas)

	// El filtro sobre una columna fuera del mapa se descarta
	assert.Len(t, saneado.Filters.Items, 1)
	assert.Equal(t, "p.nombre", saneado.Filters.Items[0].Field)

	// El order_by expuesto en la API se traduce a la columna real
	assert.Equal(t, "p.nombre", saneado.Order.Field)
}

func TestSanitizeWithColumnsDescartaOrdenDesconocido(t *testing.T) {
	helper := NewControllerHelper()
	columnas := map[string]string{"fecha": "v.fecha"}

	criteria := domainCriteria.NewCriteriaBuilder().
		WithOrder("contrasena", domainCriteria.DESC).
		Build()

	saneado := helper.SanitizeWithColumns(criteria, columnas)
	assert.True(t, saneado.Order.IsEmpty())
}
