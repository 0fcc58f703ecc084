package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/app-store-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testOptions = domain.FilterOptions{
	Countries:     []string{"Brazil", "United States", domain.UnknownCountry},
	Platforms:     []string{"App Store", "Google Play"},
	Months:        []string{"November", "December"},
	Periods:       []string{"2023-11", "2023-12"},
	DefaultPeriod: "2023-12",
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().Options().Return(testOptions)

	rec := serve(GetFilterOptions(service), "/v1/filters")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testOptions, got)
}

func TestGetOverview(t *testing.T) {
	t.Run("Sem parâmetros seleciona todos os valores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().Options().Return(testOptions)
		service.EXPECT().Overview(gomock.Any()).DoAndReturn(func(f domain.FilterSet) domain.OverviewReport {
			assert.Equal(t, testOptions.Countries, f.Countries)
			assert.Equal(t, domain.Platforms, f.Platforms)
			assert.Equal(t, domain.MonthNames[:], f.Months)
			assert.Nil(t, f.Period)
			return domain.OverviewReport{TotalRevenue: 10.5, TotalDownloads: 3}
		})

		rec := serve(GetOverview(service), "/v1/dashboard/overview")

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.OverviewReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 10.5, got.TotalRevenue)
	})

	t.Run("Parâmetro presente e vazio não seleciona nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		// Options não deve ser chamado: o país foi informado
		service.EXPECT().Overview(gomock.Any()).DoAndReturn(func(f domain.FilterSet) domain.OverviewReport {
			assert.NotNil(t, f.Countries)
			assert.Empty(t, f.Countries)
			return domain.OverviewReport{Empty: true}
		})

		rec := serve(GetOverview(service), "/v1/dashboard/overview?country=")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Aceita valores repetidos e separados por vírgula", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		query := url.Values{}
		query.Add("country", "Brazil,United States")
		query.Add("country", domain.UnknownCountry)
		query.Add("platform", "Google Play")
		query.Add("month", "December")

		service.EXPECT().Overview(gomock.Any()).DoAndReturn(func(f domain.FilterSet) domain.OverviewReport {
			assert.Equal(t, []string{"Brazil", "United States", domain.UnknownCountry}, f.Countries)
			assert.Equal(t, []domain.Platform{domain.GooglePlay}, f.Platforms)
			assert.Equal(t, []string{"December"}, f.Months)
			return domain.OverviewReport{}
		})

		rec := serve(GetOverview(service), "/v1/dashboard/overview?"+query.Encode())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "Plataforma desconhecida", query: "platform=Steam", field: "Platforms"},
		{name: "Mês desconhecido", query: "month=Dezembro", field: "Months"},
		{name: "Segundo mês inválido não expõe o índice", query: "month=December&month=Dezembro", field: "Months"},
		{name: "Plataforma inválida em lista separada por vírgula", query: "platform=App%20Store,Steam", field: "Platforms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)

			rec := serve(GetOverview(service), "/v1/dashboard/overview?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			apiErr := decodeError(t, rec)
			assert.Equal(t, apiErrors.ErrInvalidFilter, apiErr.Code)
			assert.Equal(t, map[string]any{"field": tt.field}, apiErr.Details)
		})
	}
}

func TestGetDetail(t *testing.T) {
	december := domain.Period{Year: 2023, Month: time.December}

	t.Run("Sem período usa o período padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().Options().Return(testOptions).Times(1)
		service.EXPECT().Detail(december, gomock.Any()).DoAndReturn(func(p domain.Period, f domain.FilterSet) (domain.DetailReport, error) {
			assert.Equal(t, testOptions.Countries, f.Countries)
			return domain.DetailReport{Period: p.String(), PriorPeriod: p.Prev().String()}, nil
		})

		rec := serve(GetDetail(service), "/v1/dashboard/detail")

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.DetailReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "2023-12", got.Period)
		assert.Equal(t, "2023-11", got.PriorPeriod)
	})

	t.Run("Período informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().Detail(domain.Period{Year: 2024, Month: time.January}, gomock.Any()).
			Return(domain.DetailReport{Period: "2024-01"}, nil)

		rec := serve(GetDetail(service), "/v1/dashboard/detail?period=2024-01&country=Brazil")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Período em formato inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		rec := serve(GetDetail(service), "/v1/dashboard/detail?period=2024-13")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Período fora dos dados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().Detail(gomock.Any(), gomock.Any()).Return(domain.DetailReport{}, dashboard.ErrPeriodNotFound)

		rec := serve(GetDetail(service), "/v1/dashboard/detail?period=2020-01&country=Brazil")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrPeriodNotFound, decodeError(t, rec).Code)
	})

	t.Run("Dataset sem períodos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().Options().Return(domain.FilterOptions{})

		rec := serve(GetDetail(service), "/v1/dashboard/detail")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
