package criteria

import (
	"net/url"
	"strconv"
	"strings"
)

// CriteriaBuilder construye un Criteria de forma fluida, típicamente desde
// query parameters de una petición HTTP
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{filters: NewFilters()}
}

// WithFilter agrega un filtro
func (b *CriteriaBuilder) WithFilter(field string, operator FilterOperator, value interface{}) *CriteriaBuilder {
	b.filters.Add(NewFilter(field, operator, value))
	return b
}

// WithOrder define el ordenamiento
func (b *CriteriaBuilder) WithOrder(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// WithPagination define limit y offset
func (b *CriteriaBuilder) WithPagination(limit, offset int) *CriteriaBuilder {
	b.limit = &limit
	b.offset = &offset
	return b
}

// FromURLValues interpreta los parámetros estándar de listado:
// limit, offset, order_by, order_dir; el resto se ignora aquí y cada módulo
// agrega sus filtros específicos con WithFilter
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	if v := values.Get("order_by"); v != "" {
		dir := ASC
		if strings.EqualFold(values.Get("order_dir"), "desc") {
			dir = DESC
		}
		b.order = NewOrder(v, dir)
	}

	limit, errL := strconv.Atoi(values.Get("limit"))
	offset, errO := strconv.Atoi(values.Get("offset"))
	if errL == nil && errO == nil && limit > 0 && offset >= 0 {
		b.limit = &limit
		b.offset = &offset
	}

	return b
}

// Build construye el Criteria final
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}
