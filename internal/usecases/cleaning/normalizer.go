package cleaning

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-insights-api/infrastructure/source"
)

// Nomes canônicos das colunas
const (
	ColumnDate       = "Date"
	ColumnCountryISO = "Country_ISO"
	ColumnPlatform   = "Platform"
	ColumnRevenue    = "Revenue"
	ColumnDownloads  = "Downloads"
	ColumnRPD        = "RPD"
	ColumnARPDAU     = "ARPDAU"
)

// columnMapping liga uma coluna do export ao nome canônico
type columnMapping struct {
	Source    string
	Canonical string
}

// Schema é o mapeamento fixo de colunas de um export
type Schema struct {
	Name    string
	Columns []columnMapping
}

var (
	// MonthlySchema descreve o export de stats mensais
	MonthlySchema = Schema{
		Name: "monthly",
		Columns: []columnMapping{
			{Source: "Date", Canonical: ColumnDate},
			{Source: "Country / Region", Canonical: ColumnCountryISO},
			{Source: "Platform", Canonical: ColumnPlatform},
			{Source: "Revenue ($)", Canonical: ColumnRevenue},
			{Source: "Downloads", Canonical: ColumnDownloads},
			{Source: "RPD ($)", Canonical: ColumnRPD},
		},
	}

	// DailySchema descreve o export de stats diários (mesmo formato + ARPDAU)
	DailySchema = Schema{
		Name:    "daily",
		Columns: append(append([]columnMapping{}, MonthlySchema.Columns...), columnMapping{Source: "ARPDAU ($)", Canonical: ColumnARPDAU}),
	}
)

// droppedColumns identificam app e publisher e não são usadas nas análises agregadas
var droppedColumns = map[string]struct{}{
	"Unified Name":           {},
	"Unified ID":             {},
	"Unified Publisher Name": {},
	"Unified Publisher ID":   {},
	"Publisher Name":         {},
	"Publisher ID":           {},
	"App Name":               {},
	"App ID":                 {},
}

// CanonicalRow é uma linha com apenas as colunas canônicas, ainda como texto
type CanonicalRow struct {
	Line       int
	Date       string
	CountryISO string
	Platform   string
	Revenue    string
	Downloads  string
	RPD        string
	ARPDAU     string
}

// CanonicalTable é a saída do normalizador
type CanonicalTable struct {
	File string
	Rows []CanonicalRow
}

// Normalize aplica o mapeamento do schema. Falha se alguma coluna obrigatória não existir.
func Normalize(table *source.Table, schema Schema) (*CanonicalTable, error) {
	positions := make(map[string]int, len(schema.Columns))
	for _, column := range schema.Columns {
		idx, ok := table.Index(column.Source)
		if !ok {
			return nil, newSchemaError(ErrMissingColumn, table.Name, column.Source)
		}
		positions[column.Canonical] = idx
	}

	logIgnoredColumns(table, schema)

	rows := make([]CanonicalRow, 0, len(table.Rows))
	for i, raw := range table.Rows {
		row := CanonicalRow{
			Line:       i + 2,
			Date:       raw[positions[ColumnDate]],
			CountryISO: raw[positions[ColumnCountryISO]],
			Platform:   raw[positions[ColumnPlatform]],
			Revenue:    raw[positions[ColumnRevenue]],
			Downloads:  raw[positions[ColumnDownloads]],
			RPD:        raw[positions[ColumnRPD]],
		}
		if idx, ok := positions[ColumnARPDAU]; ok {
			row.ARPDAU = raw[idx]
		}
		rows = append(rows, row)
	}

	return &CanonicalTable{File: table.Name, Rows: rows}, nil
}

func logIgnoredColumns(table *source.Table, schema Schema) {
	known := make(map[string]struct{}, len(schema.Columns))
	for _, column := range schema.Columns {
		known[column.Source] = struct{}{}
	}

	for _, header := range table.Header {
		if _, ok := known[header]; ok {
			continue
		}
		if _, ok := droppedColumns[header]; ok {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"file":   table.Name,
			"schema": schema.Name,
			"column": header,
		}).Debug("Coluna não mapeada ignorada")
	}
}
