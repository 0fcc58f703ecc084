// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownCountry é o rótulo do grupo de linhas cujo código ISO não existe na tabela de países.
// A tabela de países não pode usar esse nome.
const UnknownCountry = "Unknown"

// Record contém os campos comuns às tabelas mensal e diária já limpas
type Record struct {
	Date       time.Time       `json:"date"`
	CountryISO string          `json:"country_iso"`
	Country    *string         `json:"country"` // nil quando o código não existe na tabela de países
	Platform   Platform        `json:"platform"`
	Revenue    decimal.Decimal `json:"revenue"`
	Downloads  int64           `json:"downloads"`
	RPD        decimal.Decimal `json:"rpd"`
	Year       int             `json:"year"`
	Month      time.Month      `json:"month"`
	MonthName  string          `json:"month_name"`
}

// Base permite que MonthlyRecord e DailyRecord sejam tratados de forma genérica
func (r Record) Base() Record {
	return r
}

// Period retorna o mês de calendário da linha
func (r Record) Period() Period {
	return Period{Year: r.Year, Month: r.Month}
}

// CountryKey retorna o nome do país ou UnknownCountry
func (r Record) CountryKey() string {
	if r.Country == nil {
		return UnknownCountry
	}
	return *r.Country
}

// MonthlyRecord é uma linha do export mensal
type MonthlyRecord struct {
	Record
}

// DailyRecord é uma linha do export diário
type DailyRecord struct {
	Record
	ARPDAU decimal.Decimal `json:"arpdau"`
}

// Row é satisfeita por qualquer linha que exponha os campos comuns
type Row interface {
	Base() Record
}

// Ref dá acesso de escrita aos campos comuns durante a limpeza dos dados
func (r *Record) Ref() *Record {
	return r
}
