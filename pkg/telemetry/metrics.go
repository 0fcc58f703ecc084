// Package telemetry registra as métricas Prometheus da aplicação
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

var (
	// HTTPRequestsTotal conta as requisições por rota, método e status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"path", "method", "status"},
	)

	// HTTPRequestDuration mede a latência por rota
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"path", "method"},
	)

	// DatasetRows é o número de linhas do snapshot corrente por tabela
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Linhas do snapshot de dados em uso",
		},
		[]string{"table"},
	)

	// DatasetLoadedAt é o horário Unix do último carregamento
	DatasetLoadedAt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_loaded_at_seconds",
			Help: "Horário Unix em que o snapshot em uso foi carregado",
		},
	)

	// DatasetReloadsTotal conta as recargas por resultado
	DatasetReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total de recargas do dataset",
		},
		[]string{"result"},
	)

	// DatasetReloadDuration mede a duração das recargas
	DatasetReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_reload_duration_seconds",
			Help:    "Duração das recargas do dataset em segundos",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ObserveBundle publica o tamanho e o horário do snapshot em uso
func ObserveBundle(bundle *domain.Bundle) {
	if bundle == nil {
		return
	}
	DatasetRows.WithLabelValues("monthly").Set(float64(len(bundle.Monthly)))
	DatasetRows.WithLabelValues("daily").Set(float64(len(bundle.Daily)))
	DatasetRows.WithLabelValues("countries").Set(float64(bundle.Countries.Len()))
	DatasetLoadedAt.Set(float64(bundle.LoadedAt.Unix()))
}

// ObserveReload registra o resultado de uma recarga
func ObserveReload(started time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	DatasetReloadsTotal.WithLabelValues(result).Inc()
	DatasetReloadDuration.Observe(time.Since(started).Seconds())
}
