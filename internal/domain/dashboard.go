package domain

import "time"

// FilterOptions representa os valores disponíveis para os filtros do dashboard
type FilterOptions struct {
	Countries     []string `json:"countries"`
	Platforms     []string `json:"platforms"`
	Months        []string `json:"months"`  // ordem de MonthNames
	Periods       []string `json:"periods"` // yyyy-mm em ordem cronológica
	DefaultPeriod string   `json:"default_period"`
}

// ShareSlice é uma fatia dos gráficos de pizza por plataforma
type ShareSlice struct {
	Platform string  `json:"platform"`
	Value    float64 `json:"value"`
}

// MonthlyPoint é um ponto do gráfico combinado de barras (receita) e linha (instalações)
type MonthlyPoint struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Downloads int64   `json:"downloads"`
}

// TreemapNode é um bloco do treemap por país
type TreemapNode struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// OverviewReport é a resposta da visão geral
type OverviewReport struct {
	Empty               bool           `json:"empty"`
	TotalRevenue        float64        `json:"total_revenue"`
	TotalDownloads      int64          `json:"total_downloads"`
	RevenueByPlatform   []ShareSlice   `json:"revenue_by_platform"`
	DownloadsByPlatform []ShareSlice   `json:"downloads_by_platform"`
	Monthly             []MonthlyPoint `json:"monthly"`
	RevenueByCountry    []TreemapNode  `json:"revenue_by_country"`
	DownloadsByCountry  []TreemapNode  `json:"downloads_by_country"`
}

// MetricDelta é um KPI com a variação percentual contra o mês anterior
type MetricDelta struct {
	Value    float64  `json:"value"`
	Prior    float64  `json:"prior"`
	DeltaPct *float64 `json:"delta_pct"` // nil é exibido como "—"
}

// BreakdownItem é a variação de uma plataforma ou país no período
type BreakdownItem struct {
	Key       string      `json:"key"`
	Revenue   MetricDelta `json:"revenue"`
	Downloads MetricDelta `json:"downloads"`
}

// DailyPoint é um ponto do gráfico diário
type DailyPoint struct {
	Date      time.Time `json:"date"`
	Revenue   float64   `json:"revenue"`
	Downloads int64     `json:"downloads"`
}

// DailyGridRow é uma linha do grid diário por plataforma com totais
type DailyGridRow struct {
	Date                time.Time `json:"date"`
	AppStoreRevenue     float64   `json:"app_store_revenue"`
	GooglePlayRevenue   float64   `json:"google_play_revenue"`
	TotalRevenue        float64   `json:"total_revenue"`
	AppStoreDownloads   int64     `json:"app_store_downloads"`
	GooglePlayDownloads int64     `json:"google_play_downloads"`
	TotalDownloads      int64     `json:"total_downloads"`
}

// DetailReport é a resposta da visão detalhada de um mês
type DetailReport struct {
	Period      string          `json:"period"`
	PriorPeriod string          `json:"prior_period"`
	Empty       bool            `json:"empty"`
	Revenue     MetricDelta     `json:"revenue"`
	Downloads   MetricDelta     `json:"downloads"`
	ByPlatform  []BreakdownItem `json:"by_platform"`
	Daily       []DailyPoint    `json:"daily"`
	ByCountry   []BreakdownItem `json:"by_country"` // ordenado por receita decrescente
	DailyGrid   []DailyGridRow  `json:"daily_grid"`
}
