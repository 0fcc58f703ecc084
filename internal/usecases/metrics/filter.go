// Package metrics contém as operações puras sobre as tabelas limpas:
// filtro, soma agrupada, variação percentual, comparação de períodos e pivot.
package metrics

import "github.com/vfg2006/app-store-insights-api/internal/domain"

// Filter retorna as linhas que passam por todas as dimensões do filtro
func Filter[T domain.Row](rows []T, f domain.FilterSet) []T {
	filtered := make([]T, 0, len(rows))
	for _, row := range rows {
		if f.Matches(row.Base()) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Total soma receita e downloads de todas as linhas
func Total[T domain.Row](rows []T) domain.GroupRow {
	total := domain.GroupRow{Values: []string{}}
	for _, row := range rows {
		r := row.Base()
		total.Revenue = total.Revenue.Add(r.Revenue)
		total.Downloads += r.Downloads
		total.Rows++
	}
	return total
}
