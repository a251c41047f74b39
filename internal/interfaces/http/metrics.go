package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	movimentacoesRegistradas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_movimentacoes_total",
		Help: "Movimentações registradas no ledger, por tipo.",
	}, []string{"tipo"})

	relatoriosExportados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_exportacoes_total",
		Help: "Relatórios exportados, por formato.",
	}, []string{"formato"})
)

// MetricsHandler expõe as métricas Prometheus no padrão promhttp.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
