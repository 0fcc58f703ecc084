// Package cleaning transforma os exports brutos no snapshot imutável usado pelo dashboard
package cleaning

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-insights-api/infrastructure/source"
	"github.com/vfg2006/app-store-insights-api/internal/config"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/pkg/utils"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// BundleLoader carrega um snapshot completo dos arquivos de origem
type BundleLoader interface {
	Load() (*domain.Bundle, error)
}

type Loader struct {
	reader  source.Reader
	sources domain.SourceFiles
}

func NewLoader(reader source.Reader, cfg config.Data) *Loader {
	return &Loader{
		reader: reader,
		sources: domain.SourceFiles{
			Monthly:   cfg.MonthlyStatsPath,
			Daily:     cfg.DailyStatsPath,
			Countries: cfg.CountryISOPath,
		},
	}
}

// Load lê, normaliza, enriquece e deriva as datas das duas tabelas.
// Qualquer erro aborta o carregamento; nenhum snapshot parcial é retornado.
func (l *Loader) Load() (*domain.Bundle, error) {
	startTime := time.Now()

	countryTable, err := l.reader.ReadFile(l.sources.Countries, source.CountryFormat)
	if err != nil {
		return nil, err
	}

	lookup, err := BuildCountryLookup(countryTable)
	if err != nil {
		return nil, errors.Wrap(err, "erro na tabela de países")
	}

	monthly, err := l.loadMonthly(lookup)
	if err != nil {
		return nil, errors.Wrap(err, "erro nos stats mensais")
	}

	daily, err := l.loadDaily(lookup)
	if err != nil {
		return nil, errors.Wrap(err, "erro nos stats diários")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do snapshot")
	}

	bundle := &domain.Bundle{
		ID:        id,
		LoadedAt:  time.Now(),
		Sources:   l.sources,
		Monthly:   monthly,
		Daily:     daily,
		Countries: lookup,
	}

	logrus.WithFields(logrus.Fields{
		"bundle_id":     bundle.ID,
		"monthly_rows":  len(monthly),
		"daily_rows":    len(daily),
		"country_codes": lookup.Len(),
		"unmatched_iso": countUnmatched(monthly) + countUnmatched(daily),
		"duration":      time.Since(startTime).String(),
	}).Info("Snapshot de dados carregado")

	return bundle, nil
}

func (l *Loader) loadMonthly(lookup domain.CountryLookup) ([]domain.MonthlyRecord, error) {
	table, err := l.reader.ReadFile(l.sources.Monthly, source.StatsFormat)
	if err != nil {
		return nil, err
	}

	canonical, err := Normalize(table, MonthlySchema)
	if err != nil {
		return nil, err
	}

	records, err := ParseMonthly(canonical)
	if err != nil {
		return nil, err
	}

	return Enrich(records, lookup), nil
}

func (l *Loader) loadDaily(lookup domain.CountryLookup) ([]domain.DailyRecord, error) {
	table, err := l.reader.ReadFile(l.sources.Daily, source.StatsFormat)
	if err != nil {
		return nil, err
	}

	canonical, err := Normalize(table, DailySchema)
	if err != nil {
		return nil, err
	}

	records, err := ParseDaily(canonical)
	if err != nil {
		return nil, err
	}

	return Enrich(records, lookup), nil
}

func countUnmatched[T domain.Row](rows []T) int {
	count := 0
	for _, row := range rows {
		if row.Base().Country == nil {
			count++
		}
	}
	return count
}
