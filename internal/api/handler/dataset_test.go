package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/scheduler"
	"github.com/vfg2006/app-store-insights-api/internal/scheduler/mocks"
	"github.com/vfg2006/app-store-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func postReload(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
	return rec
}

func TestReloadDataset(t *testing.T) {
	t.Run("Recarga síncrona devolve o novo snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDatasetReloader(ctrl)
		service.EXPECT().Reload().Return(domain.BundleInfo{ID: "novo", MonthlyRows: 48}, nil)

		rec := postReload(ReloadDataset(service), "/v1/admin/dataset/reload")

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Bundle domain.BundleInfo `json:"bundle"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "novo", body.Bundle.ID)
		assert.Equal(t, 48, body.Bundle.MonthlyRows)
	})

	t.Run("Falha de carga mantém o snapshot e responde 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDatasetReloader(ctrl)
		service.EXPECT().Reload().Return(domain.BundleInfo{}, errors.New("coluna obrigatória ausente"))

		rec := postReload(ReloadDataset(service), "/v1/admin/dataset/reload")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrDatasetLoad, apiErr.Code)
		assert.Contains(t, apiErr.Message, "coluna obrigatória ausente")
	})

	t.Run("Recarga em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDatasetReloader(ctrl)
		service.EXPECT().Reload().Return(domain.BundleInfo{}, scheduler.ErrReloadInProgress)

		rec := postReload(ReloadDataset(service), "/v1/admin/dataset/reload")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Modo assíncrono", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDatasetReloader(ctrl)
		service.EXPECT().TriggerManualSync().Return(true)

		rec := postReload(ReloadDataset(service), "/v1/admin/dataset/reload?async=true")

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("Modo assíncrono com recarga em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDatasetReloader(ctrl)
		service.EXPECT().TriggerManualSync().Return(false)

		rec := postReload(ReloadDataset(service), "/v1/admin/dataset/reload?async=1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrReloadInProcess, decodeError(t, rec).Code)
	})
}

func TestGetDatasetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDatasetReloader(ctrl)
	service.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": false, "sync_running": true})

	rec := serve(GetDatasetStatus(service), "/v1/admin/dataset/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sync_enabled":false,"sync_running":true}`, rec.Body.String())
}
