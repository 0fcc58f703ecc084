package domain

import (
	"fmt"
	"time"
)

// MonthNames é a ordem canônica dos meses usada para ordenar qualquer saída agrupada por mês
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex retorna a posição (0-11) do nome do mês em MonthNames, ou -1
func MonthIndex(name string) int {
	for i, m := range MonthNames {
		if m == name {
			return i
		}
	}
	return -1
}

// Period representa um mês de calendário (ano + mês)
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// PeriodOf retorna o período que contém a data
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod interpreta um período no formato yyyy-mm (ex: 2024-01)
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("período inválido %q, use o formato yyyy-mm: %w", s, err)
	}
	return PeriodOf(t), nil
}

// String formata o período como yyyy-mm
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Prev retorna exatamente um mês de calendário antes (janeiro -> dezembro do ano anterior)
func (p Period) Prev() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Before indica se p é anterior a other
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Contains indica se a data pertence ao período
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
