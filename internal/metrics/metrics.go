package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metricas agrupa os contadores Prometheus do serviço.
type Metricas struct {
	ContratosCriados prometheus.Counter
	PDFsGerados      *prometheus.CounterVec
	RequisicoesHTTP  *prometheus.CounterVec
}

// New registra os contadores no registrador informado. Os testes passam um
// registrador próprio para não colidir com o padrão do processo.
func New(reg prometheus.Registerer) *Metricas {
	factory := promauto.With(reg)
	return &Metricas{
		ContratosCriados: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "contratos",
			Name:      "criados_total",
			Help:      "Total de contratos criados.",
		}),
		PDFsGerados: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contratos",
			Name:      "pdfs_gerados_total",
			Help:      "Total de PDFs gerados, por resultado.",
		}, []string{"status"}), // status: ok, erro
		RequisicoesHTTP: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contratos",
			Subsystem: "http",
			Name:      "requisicoes_total",
			Help:      "Total de requisições HTTP por método e status.",
		}, []string{"metodo", "status"}),
	}
}
