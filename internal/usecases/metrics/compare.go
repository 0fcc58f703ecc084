package metrics

import (
	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

// TotalKey é a chave do resumo agregado de uma comparação
const TotalKey = "Total"

// Compare resume o período p contra o mês anterior, para cada valor da dimensão
// presente em p. Valores sem linhas no mês anterior têm base zero e variação nil.
func Compare[T domain.Row](rows []T, f domain.FilterSet, p domain.Period, dim Dimension) domain.Comparison {
	prior := p.Prev()

	current := Filter(rows, f.WithPeriod(p))
	previous := Filter(rows, f.WithPeriod(prior))

	previousByKey := make(map[string]domain.GroupRow)
	for _, g := range SumBy(previous, dim) {
		previousByKey[g.Values[0]] = g
	}

	groups := SumBy(current, dim)
	items := make([]domain.PeriodSummary, 0, len(groups))
	for _, g := range groups {
		items = append(items, summarize(g.Values[0], g, previousByKey[g.Values[0]]))
	}

	return domain.Comparison{
		Period: p,
		Prior:  prior,
		Total:  summarize(TotalKey, Total(current), Total(previous)),
		Items:  items,
	}
}

func summarize(key string, current, prior domain.GroupRow) domain.PeriodSummary {
	return domain.PeriodSummary{
		Key:               key,
		Revenue:           current.Revenue,
		Downloads:         current.Downloads,
		PriorRevenue:      prior.Revenue,
		PriorDownloads:    prior.Downloads,
		RevenueDeltaPct:   DeltaPct(current.Revenue.InexactFloat64(), prior.Revenue.InexactFloat64()),
		DownloadsDeltaPct: DeltaPct(float64(current.Downloads), float64(prior.Downloads)),
	}
}
