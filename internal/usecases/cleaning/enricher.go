package cleaning

import (
	"strings"

	"github.com/vfg2006/app-store-insights-api/infrastructure/source"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

const (
	countryCodeColumn = "Code"
	countryNameColumn = "Name"
)

// recordRef é satisfeita por *MonthlyRecord e *DailyRecord
type recordRef[T any] interface {
	*T
	Ref() *domain.Record
}

// BuildCountryLookup monta a tabela de países a partir do CSV de códigos ISO
func BuildCountryLookup(table *source.Table) (domain.CountryLookup, error) {
	codeIdx, ok := table.Index(countryCodeColumn)
	if !ok {
		return domain.CountryLookup{}, newSchemaError(ErrMissingColumn, table.Name, countryCodeColumn)
	}

	nameIdx, ok := table.Index(countryNameColumn)
	if !ok {
		return domain.CountryLookup{}, newSchemaError(ErrMissingColumn, table.Name, countryNameColumn)
	}

	names := make(map[string]string, len(table.Rows))
	for _, row := range table.Rows {
		code := strings.TrimSpace(row[codeIdx])
		if code == "" {
			continue
		}

		if _, exists := names[code]; exists {
			return domain.CountryLookup{}, newSchemaError(ErrDuplicateCountryCode, table.Name, code)
		}

		name := strings.TrimSpace(row[nameIdx])
		if strings.EqualFold(name, domain.UnknownCountry) {
			return domain.CountryLookup{}, newSchemaError(ErrReservedCountryName, table.Name, code)
		}
		names[code] = name
	}

	return domain.NewCountryLookup(names), nil
}

// Enrich faz o left join do código ISO com a tabela de países. Toda linha é mantida;
// códigos sem correspondência ficam com Country nulo.
func Enrich[T any, P recordRef[T]](rows []T, lookup domain.CountryLookup) []T {
	enriched := make([]T, len(rows))
	copy(enriched, rows)

	for i := range enriched {
		record := P(&enriched[i]).Ref()
		record.Country = nil

		if name, ok := lookup.Name(strings.TrimSpace(record.CountryISO)); ok {
			country := name
			record.Country = &country
		}
	}

	return enriched
}
