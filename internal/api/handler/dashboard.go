package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/app-store-insights-api/pkg/apiErrors"
	"github.com/vfg2006/app-store-insights-api/pkg/log"
)

// GetFilterOptions retorna os valores disponíveis para cada filtro
func GetFilterOptions(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Options())
	})
}

// GetOverview retorna a visão geral dos meses selecionados
func GetOverview(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := parseDashboardQuery(r.URL.Query())
		query.Period = ""

		if !validateQuery(w, r, query) {
			return
		}

		filter := query.filterSet(func() []string { return service.Options().Countries })
		report := service.Overview(filter)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"countries": len(filter.Countries),
			"platforms": len(filter.Platforms),
			"months":    len(filter.Months),
			"empty":     report.Empty,
		}).Debug("overview: relatório gerado")

		writeJSON(w, r, report)
	})
}

// GetDetail retorna a visão detalhada de um mês com as variações contra o mês anterior
func GetDetail(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := parseDashboardQuery(r.URL.Query())
		query.Months = nil

		if !validateQuery(w, r, query) {
			return
		}

		var options *domain.FilterOptions
		loadOptions := func() domain.FilterOptions {
			if options == nil {
				o := service.Options()
				options = &o
			}
			return *options
		}

		periodText := query.Period
		if periodText == "" {
			periodText = loadOptions().DefaultPeriod
		}
		if periodText == "" {
			apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, "Nenhum período disponível nos dados", nil)
			return
		}

		period, err := domain.ParsePeriod(periodText)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use yyyy-mm", map[string]any{"period": periodText})
			return
		}

		filter := query.filterSet(func() []string { return loadOptions().Countries })

		report, err := service.Detail(period, filter)
		if err != nil {
			if errors.Is(err, dashboard.ErrPeriodNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, "Período não encontrado nos dados", map[string]any{"period": period.String()})
				return
			}

			logger.WithError(err).WithField("period", period.String()).Error("detail: erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"period": report.Period,
			"empty":  report.Empty,
		}).Debug("detail: relatório gerado")

		writeJSON(w, r, report)
	})
}

func validateQuery(w http.ResponseWriter, r *http.Request, query dashboardQuery) bool {
	err := getValidator().Struct(query)
	if err == nil {
		return true
	}

	field := invalidField(err)
	log.ForContext(r.Context()).WithError(err).Warn("dashboard: filtro inválido")

	if field == "Period" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use yyyy-mm", map[string]any{"period": query.Period})
		return false
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Valor de filtro desconhecido", map[string]any{"field": field})
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}
