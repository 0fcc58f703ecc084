package metrics

import (
	"sort"

	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

// PivotWithTotals agrupa por (data, plataforma) e transforma as plataformas em colunas.
// As colunas App Store, Google Play e Total sempre existem; combinações ausentes valem zero.
func PivotWithTotals[T domain.Row](rows []T) []domain.PivotRow {
	index := make(map[string]int)
	pivot := make([]domain.PivotRow, 0)

	for _, row := range rows {
		r := row.Base()
		key := r.Date.Format(dateLayout)

		pos, ok := index[key]
		if !ok {
			pos = len(pivot)
			index[key] = pos
			pivot = append(pivot, domain.PivotRow{Date: r.Date})
		}

		p := &pivot[pos]
		switch r.Platform {
		case domain.AppStore:
			p.Revenue.AppStore = p.Revenue.AppStore.Add(r.Revenue)
			p.Downloads.AppStore += r.Downloads
		case domain.GooglePlay:
			p.Revenue.GooglePlay = p.Revenue.GooglePlay.Add(r.Revenue)
			p.Downloads.GooglePlay += r.Downloads
		}
	}

	for i := range pivot {
		pivot[i].Revenue.Total = pivot[i].Revenue.AppStore.Add(pivot[i].Revenue.GooglePlay)
		pivot[i].Downloads.Total = pivot[i].Downloads.AppStore + pivot[i].Downloads.GooglePlay
	}

	sort.SliceStable(pivot, func(i, j int) bool {
		return pivot[i].Date.Before(pivot[j].Date)
	})

	return pivot
}
