package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-insights-api/internal/config"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/scheduler/mocks"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/cleaning"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/dashboard"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) (http.Handler, *mocks.MockDatasetReloader) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: "teste", AdminEmail: "admin@example.com", AdminPasswordHash: string(hash)},
	}

	us := "United States"
	holder := cleaning.NewHolder(&domain.Bundle{
		ID:        "b1",
		LoadedAt:  time.Now(),
		Countries: domain.NewCountryLookup(map[string]string{"US": us}),
		Monthly:   []domain.MonthlyRecord{
			{Record: domain.Record{
				Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), Year: 2023, Month: time.December, MonthName: "December",
				CountryISO: "US", Country: &us, Platform: domain.AppStore,
				Revenue: decimal.RequireFromString("12.5"), Downloads: 4,
			}},
		},
	})

	ctrl := gomock.NewController(t)
	reloader := mocks.NewMockDatasetReloader(ctrl)

	srv, err := New(cfg, holder, dashboard.NewService(holder), authenticating.NewService(cfg.Auth), reloader)
	require.NoError(t, err)

	return srv.Handler(), reloader
}

func TestServer(t *testing.T) {
	h, reloader := newTestServer(t)

	do := func(method, target, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Healthcheck informa o snapshot", func(t *testing.T) {
		rec := do(http.MethodGet, "/healthcheck", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bundle_id":"b1"`)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("Dashboard é público", func(t *testing.T) {
		rec := do(http.MethodGet, "/v1/dashboard/overview", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_revenue":12.5`)
	})

	t.Run("Detalhe usa dezembro como padrão", func(t *testing.T) {
		rec := do(http.MethodGet, "/v1/dashboard/detail", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"period":"2023-12"`)
	})

	t.Run("Rotas admin exigem token", func(t *testing.T) {
		rec := do(http.MethodGet, "/v1/admin/dataset/status", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Login e acesso admin", func(t *testing.T) {
		rec := do(http.MethodPost, "/v1/login", `{"email":"Admin@Example.com","password":"segredo"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body["token"])

		reloader.EXPECT().GetStatus().Return(map[string]any{"sync_running": false})

		rec = do(http.MethodGet, "/v1/admin/dataset/status", "", body["token"])
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sync_running":false}`, rec.Body.String())
	})

	t.Run("Métricas expostas", func(t *testing.T) {
		rec := do(http.MethodGet, "/metrics", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}

func TestNew_SemConfiguracao(t *testing.T) {
	_, err := New(nil, nil, nil, nil, nil)
	assert.Error(t, err)
}
