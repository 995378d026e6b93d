package criteria

import (
	domainCriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"

	"github.com/gin-gonic/gin"
)

// ControllerHelper proporciona funciones base para trabajar con criterios en controllers
type ControllerHelper struct{}

// NewControllerHelper crea una nueva instancia del helper
func NewControllerHelper() *ControllerHelper {
	return &ControllerHelper{}
}

// BuildCriteriaFromQuery construye criterios base desde query parameters de Gin
func (h *ControllerHelper) BuildCriteriaFromQuery(c *gin.Context) *domainCriteria.CriteriaBuilder {
	return domainCriteria.NewCriteriaBuilder().FromURLValues(c.Request.URL.Query())
}

// ValidateAndSanitizeCriteria valida y sanitiza criterios antes de usarlos.
// Solo los campos de allowedFields pueden filtrar u ordenar; cualquier otro
// campo se descarta para impedir inyección vía nombres de columna.
func (h *ControllerHelper) ValidateAndSanitizeCriteria(criteria domainCriteria.Criteria, allowedFields []string) domainCriteria.Criteria {
	if len(allowedFields) == 0 {
		return criteria
	}

	allowedMap := make(map[string]bool)
	for _, field := range allowedFields {
		allowedMap[field] = true
	}

	validFilters := domainCriteria.NewFilters()
	for _, filter := range criteria.Filters.Items {
		if allowedMap[filter.Field] {
			validFilters.Add(filter)
		}
	}

	validOrder := criteria.Order
	if validOrder.Field != "" && !allowedMap[validOrder.Field] {
		validOrder = domainCriteria.Order{}
	}

	return domainCriteria.NewCriteria(validFilters, validOrder, criteria.Limit, criteria.Offset)
}

// SanitizeWithColumns traduce el campo de ordenamiento del nombre expuesto en
// la API a su columna real y descarta filtros u ordenamientos cuya columna no
// esté en el mapa
func (h *ControllerHelper) SanitizeWithColumns(criteria domainCriteria.Criteria, columns map[string]string) domainCriteria.Criteria {
	allowed := make([]string, 0, len(columns))
	for _, column := range columns {
		allowed = append(allowed, column)
	}

	if column, ok := columns[criteria.Order.Field]; ok {
		criteria.Order.Field = column
	}

	return h.ValidateAndSanitizeCriteria(criteria, allowed)
}
