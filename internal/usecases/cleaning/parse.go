package cleaning

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

// ParseMonthly converte a tabela canônica mensal em registros tipados
func ParseMonthly(table *CanonicalTable) ([]domain.MonthlyRecord, error) {
	records := make([]domain.MonthlyRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		record, err := parseRecord(table.File, row)
		if err != nil {
			return nil, err
		}
		records = append(records, domain.MonthlyRecord{Record: record})
	}
	return records, nil
}

// ParseDaily converte a tabela canônica diária em registros tipados
func ParseDaily(table *CanonicalTable) ([]domain.DailyRecord, error) {
	records := make([]domain.DailyRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		record, err := parseRecord(table.File, row)
		if err != nil {
			return nil, err
		}

		arpdau, err := parseAmount(row.ARPDAU)
		if err != nil {
			return nil, newParseError(err, table.File, row.Line, ColumnARPDAU, row.ARPDAU)
		}

		records = append(records, domain.DailyRecord{Record: record, ARPDAU: arpdau})
	}
	return records, nil
}

func parseRecord(file string, row CanonicalRow) (domain.Record, error) {
	var record domain.Record

	date, err := ParseDate(row.Date)
	if err != nil {
		return record, newParseError(ErrInvalidDate, file, row.Line, ColumnDate, row.Date)
	}
	DeriveTemporal(&record, date)

	platform, err := domain.ParsePlatform(row.Platform)
	if err != nil {
		return record, newParseError(ErrInvalidPlatform, file, row.Line, ColumnPlatform, row.Platform)
	}
	record.Platform = platform

	record.CountryISO = strings.TrimSpace(row.CountryISO)

	if record.Revenue, err = parseAmount(row.Revenue); err != nil {
		return record, newParseError(err, file, row.Line, ColumnRevenue, row.Revenue)
	}

	if record.Downloads, err = parseCount(row.Downloads); err != nil {
		return record, newParseError(err, file, row.Line, ColumnDownloads, row.Downloads)
	}

	if record.RPD, err = parseAmount(row.RPD); err != nil {
		return record, newParseError(err, file, row.Line, ColumnRPD, row.RPD)
	}

	return record, nil
}

// parseAmount interpreta valores monetários. Célula vazia conta como zero.
func parseAmount(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrInvalidNumber
	}

	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeValue
	}

	return amount, nil
}

// parseCount interpreta contagens inteiras; aceita "12.0" vindo de exports com float
func parseCount(value string) (int64, error) {
	amount, err := parseAmount(value)
	if err != nil {
		return 0, err
	}

	if !amount.IsInteger() {
		return 0, ErrInvalidNumber
	}

	return amount.IntPart(), nil
}
