package criteria

// FilterOperator operadores soportados por los filtros
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpLike               FilterOperator = "LIKE"
	OpIn                 FilterOperator = "IN"
	OpIsNull             FilterOperator = "NULL"
	OpIsNotNull          FilterOperator = "NOT NULL"
)

// Filter representa un filtro individual campo-operador-valor
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// NewFilter crea un nuevo filtro
func NewFilter(field string, operator FilterOperator, value interface{}) Filter {
	return Filter{
		Field:    field,
		Operator: operator,
		Value:    value,
	}
}

// Filters colección de filtros combinados con AND
type Filters struct {
	Items []Filter
}

// NewFilters crea una colección de filtros
func NewFilters(filters ...Filter) Filters {
	return Filters{Items: filters}
}

// Add agrega un filtro a la colección
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// OrderType dirección del ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Order representa el ordenamiento de una consulta
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un nuevo ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento definido
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria combina filtros, ordenamiento y paginación para consultas de lectura
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	}
}
