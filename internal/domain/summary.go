package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupRow é uma linha de soma agrupada. Values segue a ordem das dimensões pedidas.
type GroupRow struct {
	Values    []string        `json:"values"`
	Revenue   decimal.Decimal `json:"revenue"`
	Downloads int64           `json:"downloads"`
	Rows      int             `json:"rows"`
}

// PeriodSummary compara um valor de dimensão com o mês imediatamente anterior
type PeriodSummary struct {
	Key               string          `json:"key"`
	Revenue           decimal.Decimal `json:"revenue"`
	Downloads         int64           `json:"downloads"`
	PriorRevenue      decimal.Decimal `json:"prior_revenue"`
	PriorDownloads    int64           `json:"prior_downloads"`
	RevenueDeltaPct   *float64        `json:"revenue_delta_pct"`   // nil = variação indefinida
	DownloadsDeltaPct *float64        `json:"downloads_delta_pct"` // nil = variação indefinida
}

// Comparison agrupa os resumos de um período contra o anterior
type Comparison struct {
	Period Period          `json:"period"`
	Prior  Period          `json:"prior"`
	Total  PeriodSummary   `json:"total"`
	Items  []PeriodSummary `json:"items"`
}

// PlatformRevenue são as colunas fixas de receita do grid diário
type PlatformRevenue struct {
	AppStore   decimal.Decimal `json:"app_store"`
	GooglePlay decimal.Decimal `json:"google_play"`
	Total      decimal.Decimal `json:"total"`
}

// PlatformDownloads são as colunas fixas de instalações do grid diário
type PlatformDownloads struct {
	AppStore   int64 `json:"app_store"`
	GooglePlay int64 `json:"google_play"`
	Total      int64 `json:"total"`
}

// PivotRow é uma linha do grid diário por plataforma
type PivotRow struct {
	Date      time.Time         `json:"date"`
	Revenue   PlatformRevenue   `json:"revenue"`
	Downloads PlatformDownloads `json:"downloads"`
}
