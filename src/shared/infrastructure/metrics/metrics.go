package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas de negocio del servicio. Se registran en el registry global y se
// exponen en /metrics cuando PROMETHEUS_ENABLED=true.
var (
	// VentasRegistradas cuenta las ventas confirmadas, etiquetadas por método de pago
	VentasRegistradas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mistrapitos_ventas_registradas_total",
		Help: "Ventas registradas correctamente",
	}, []string{"metodo_pago"})

	// VentasFallidas cuenta los intentos de venta que terminaron en rollback
	VentasFallidas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mistrapitos_ventas_fallidas_total",
		Help: "Ventas que fallaron y fueron revertidas",
	})

	// VentasAnuladas cuenta las ventas eliminadas con restauración de stock
	VentasAnuladas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mistrapitos_ventas_anuladas_total",
		Help: "Ventas anuladas con stock restaurado",
	})

	// ReportesGenerados cuenta archivos de reporte generados, por tipo y formato
	ReportesGenerados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mistrapitos_reportes_generados_total",
		Help: "Archivos de reporte generados",
	}, []string{"tipo", "formato"})

	// ReporteDuracion mide la latencia de generación de archivos de reporte
	ReporteDuracion = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mistrapitos_reporte_duracion_segundos",
		Help:    "Duración de la generación de archivos de reporte",
		Buckets: prometheus.DefBuckets,
	})
)
