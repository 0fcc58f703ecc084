package metrics

import (
	"sort"
	"strings"

	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

// Dimension é uma coluna pela qual as linhas podem ser agrupadas
type Dimension int

const (
	DimensionPlatform Dimension = iota + 1
	DimensionCountry
	DimensionCountryISO
	DimensionDate
	DimensionMonthName
	DimensionPeriod
)

const dateLayout = "2006-01-02"

// Value extrai o valor da dimensão como texto
func (d Dimension) Value(r domain.Record) string {
	switch d {
	case DimensionPlatform:
		return r.Platform.String()
	case DimensionCountry:
		return r.CountryKey()
	case DimensionCountryISO:
		return r.CountryISO
	case DimensionDate:
		return r.Date.Format(dateLayout)
	case DimensionMonthName:
		return r.MonthName
	case DimensionPeriod:
		return r.Period().String()
	}
	panic("metrics: dimensão desconhecida")
}

// SumBy soma Revenue e Downloads para cada combinação de valores das dimensões
// presente nas linhas. A saída segue a ordem em que cada grupo aparece.
func SumBy[T domain.Row](rows []T, dims ...Dimension) []domain.GroupRow {
	index := make(map[string]int)
	groups := make([]domain.GroupRow, 0)

	for _, row := range rows {
		r := row.Base()

		values := make([]string, len(dims))
		for i, d := range dims {
			values[i] = d.Value(r)
		}
		key := strings.Join(values, "\x00")

		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, domain.GroupRow{Values: values})
		}

		groups[pos].Revenue = groups[pos].Revenue.Add(r.Revenue)
		groups[pos].Downloads += r.Downloads
		groups[pos].Rows++
	}

	return groups
}

// SortByRevenueDesc ordena por receita decrescente; empates mantêm a ordem original
func SortByRevenueDesc(groups []domain.GroupRow) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue.GreaterThan(groups[j].Revenue)
	})
}

// SortByMonth ordena pela posição do nome do mês em domain.MonthNames.
// pos indica qual valor do grupo contém o nome do mês.
func SortByMonth(groups []domain.GroupRow, pos int) {
	sort.SliceStable(groups, func(i, j int) bool {
		return domain.MonthIndex(groups[i].Values[pos]) < domain.MonthIndex(groups[j].Values[pos])
	})
}

// SortByKey ordena lexicograficamente pelos valores das dimensões
func SortByKey(groups []domain.GroupRow) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Values, groups[j].Values
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}

// SortByDownloadsDesc ordena por downloads decrescente; empates mantêm a ordem original
func SortByDownloadsDesc(groups []domain.GroupRow) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Downloads > groups[j].Downloads
	})
}
