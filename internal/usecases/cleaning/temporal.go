package cleaning

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

// dateLayouts são os formatos aceitos na coluna Date, testados em ordem
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseDate converte o texto em data. Não existe fallback para valor nulo.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: valor vazio", ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// DeriveTemporal preenche Date, Year, Month e MonthName a partir da data já interpretada
func DeriveTemporal(r *domain.Record, date time.Time) {
	r.Date = date
	r.Year = date.Year()
	r.Month = date.Month()
	r.MonthName = domain.MonthNames[date.Month()-1]
}
