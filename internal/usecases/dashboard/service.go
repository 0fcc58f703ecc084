// Package dashboard monta os modelos de visualização das visões geral e detalhada
// a partir do snapshot corrente.
package dashboard

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/metrics"
	"github.com/vfg2006/app-store-insights-api/pkg/utils"
)

var ErrPeriodNotFound = errors.New("período não encontrado nos dados")

//go:generate mockgen -source=service.go -destination=mocks/mock_dashboard.go -package=mocks

// Dashboarder é o contrato consumido pelos handlers HTTP
type Dashboarder interface {
	Options() domain.FilterOptions
	Overview(f domain.FilterSet) domain.OverviewReport
	Detail(period domain.Period, f domain.FilterSet) (domain.DetailReport, error)
}

// BundleProvider fornece o snapshot em uso
type BundleProvider interface {
	Current() *domain.Bundle
}

type Service struct {
	bundles BundleProvider
}

func NewService(bundles BundleProvider) *Service {
	return &Service{bundles: bundles}
}

// Options lista os valores de cada filtro presentes nos stats mensais
func (s *Service) Options() domain.FilterOptions {
	bundle := s.bundles.Current()

	countries := make(map[string]struct{})
	platforms := make(map[domain.Platform]struct{})
	months := make(map[string]struct{})
	periods := make(map[domain.Period]struct{})

	for _, row := range bundle.Monthly {
		countries[row.CountryKey()] = struct{}{}
		platforms[row.Platform] = struct{}{}
		months[row.MonthName] = struct{}{}
		periods[row.Period()] = struct{}{}
	}

	options := domain.FilterOptions{
		Countries: make([]string, 0, len(countries)),
		Platforms: make([]string, 0, len(platforms)),
		Months:    make([]string, 0, len(months)),
		Periods:   make([]string, 0, len(periods)),
	}

	for country := range countries {
		options.Countries = append(options.Countries, country)
	}
	sort.Strings(options.Countries)

	for _, p := range domain.Platforms {
		if _, ok := platforms[p]; ok {
			options.Platforms = append(options.Platforms, p.String())
		}
	}

	for _, m := range domain.MonthNames {
		if _, ok := months[m]; ok {
			options.Months = append(options.Months, m)
		}
	}

	sorted := make([]domain.Period, 0, len(periods))
	for p := range periods {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	for _, p := range sorted {
		options.Periods = append(options.Periods, p.String())
	}

	options.DefaultPeriod = defaultPeriod(options.Periods)

	return options
}

// defaultPeriod escolhe o primeiro dezembro disponível, ou o primeiro período
func defaultPeriod(periods []string) string {
	for _, p := range periods {
		if strings.HasSuffix(p, "-12") {
			return p
		}
	}
	if len(periods) > 0 {
		return periods[0]
	}
	return ""
}

// Overview monta a visão geral sobre os stats mensais filtrados
func (s *Service) Overview(f domain.FilterSet) domain.OverviewReport {
	bundle := s.bundles.Current()
	rows := metrics.Filter(bundle.Monthly, f)

	total := metrics.Total(rows)
	report := domain.OverviewReport{
		Empty:               len(rows) == 0,
		TotalRevenue:        money(total.Revenue),
		TotalDownloads:      total.Downloads,
		RevenueByPlatform:   []domain.ShareSlice{},
		DownloadsByPlatform: []domain.ShareSlice{},
		Monthly:             []domain.MonthlyPoint{},
		RevenueByCountry:    []domain.TreemapNode{},
		DownloadsByCountry:  []domain.TreemapNode{},
	}

	byPlatform := metrics.SumBy(rows, metrics.DimensionPlatform)
	metrics.SortByKey(byPlatform)
	for _, g := range byPlatform {
		report.RevenueByPlatform = append(report.RevenueByPlatform, domain.ShareSlice{Platform: g.Values[0], Value: money(g.Revenue)})
		report.DownloadsByPlatform = append(report.DownloadsByPlatform, domain.ShareSlice{Platform: g.Values[0], Value: float64(g.Downloads)})
	}

	byMonth := metrics.SumBy(rows, metrics.DimensionMonthName)
	metrics.SortByMonth(byMonth, 0)
	for _, g := range byMonth {
		report.Monthly = append(report.Monthly, domain.MonthlyPoint{Month: g.Values[0], Revenue: money(g.Revenue), Downloads: g.Downloads})
	}

	byCountry := metrics.SumBy(rows, metrics.DimensionCountry)
	metrics.SortByRevenueDesc(byCountry)
	for _, g := range byCountry {
		report.RevenueByCountry = append(report.RevenueByCountry, domain.TreemapNode{Country: g.Values[0], Value: money(g.Revenue)})
	}
	metrics.SortByDownloadsDesc(byCountry)
	for _, g := range byCountry {
		report.DownloadsByCountry = append(report.DownloadsByCountry, domain.TreemapNode{Country: g.Values[0], Value: float64(g.Downloads)})
	}

	logrus.WithFields(logrus.Fields{
		"bundle_id": bundle.ID,
		"rows":      len(rows),
	}).Debug("Visão geral calculada")

	return report
}

// Detail monta a visão detalhada de um mês comparado ao mês anterior.
// O filtro de meses é ignorado; valem países e plataformas.
func (s *Service) Detail(period domain.Period, f domain.FilterSet) (domain.DetailReport, error) {
	bundle := s.bundles.Current()

	if !hasPeriod(bundle.Monthly, period) {
		return domain.DetailReport{}, ErrPeriodNotFound
	}

	current := metrics.Filter(bundle.Monthly, f.WithPeriod(period))
	daily := metrics.Filter(bundle.Daily, f.WithPeriod(period))

	byPlatform := metrics.Compare(bundle.Monthly, f, period, metrics.DimensionPlatform)
	byCountry := metrics.Compare(bundle.Monthly, f, period, metrics.DimensionCountry)

	report := domain.DetailReport{
		Period:      period.String(),
		PriorPeriod: period.Prev().String(),
		Empty:       len(current) == 0,
		Revenue:     revenueDelta(byPlatform.Total),
		Downloads:   downloadsDelta(byPlatform.Total),
		ByPlatform:  breakdown(byPlatform.Items),
		ByCountry:   breakdown(byCountry.Items),
		Daily:       []domain.DailyPoint{},
		DailyGrid:   []domain.DailyGridRow{},
	}

	sort.SliceStable(report.ByPlatform, func(i, j int) bool {
		return report.ByPlatform[i].Key < report.ByPlatform[j].Key
	})
	sort.SliceStable(report.ByCountry, func(i, j int) bool {
		return report.ByCountry[i].Revenue.Value > report.ByCountry[j].Revenue.Value
	})

	for _, row := range metrics.PivotWithTotals(daily) {
		report.Daily = append(report.Daily, domain.DailyPoint{
			Date:      row.Date,
			Revenue:   money(row.Revenue.Total),
			Downloads: row.Downloads.Total,
		})
		report.DailyGrid = append(report.DailyGrid, domain.DailyGridRow{
			Date:                row.Date,
			AppStoreRevenue:     money(row.Revenue.AppStore),
			GooglePlayRevenue:   money(row.Revenue.GooglePlay),
			TotalRevenue:        money(row.Revenue.Total),
			AppStoreDownloads:   row.Downloads.AppStore,
			GooglePlayDownloads: row.Downloads.GooglePlay,
			TotalDownloads:      row.Downloads.Total,
		})
	}

	logrus.WithFields(logrus.Fields{
		"bundle_id":    bundle.ID,
		"period":       report.Period,
		"monthly_rows": len(current),
		"daily_rows":   len(daily),
	}).Debug("Visão detalhada calculada")

	return report, nil
}

func hasPeriod(rows []domain.MonthlyRecord, period domain.Period) bool {
	for _, row := range rows {
		if row.Period() == period {
			return true
		}
	}
	return false
}

func breakdown(items []domain.PeriodSummary) []domain.BreakdownItem {
	result := make([]domain.BreakdownItem, 0, len(items))
	for _, item := range items {
		result = append(result, domain.BreakdownItem{
			Key:       item.Key,
			Revenue:   revenueDelta(item),
			Downloads: downloadsDelta(item),
		})
	}
	return result
}

func revenueDelta(s domain.PeriodSummary) domain.MetricDelta {
	return domain.MetricDelta{
		Value:    money(s.Revenue),
		Prior:    money(s.PriorRevenue),
		DeltaPct: roundPtr(s.RevenueDeltaPct),
	}
}

func downloadsDelta(s domain.PeriodSummary) domain.MetricDelta {
	return domain.MetricDelta{
		Value:    float64(s.Downloads),
		Prior:    float64(s.PriorDownloads),
		DeltaPct: roundPtr(s.DownloadsDeltaPct),
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := utils.RoundWithTwoDecimalPlace(*v)
	return &rounded
}
