package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-insights-api/internal/config"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/cleaning"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/cleaning/mocks"
	"go.uber.org/mock/gomock"
)

func newTestReloadService(t *testing.T, enabled bool, cron string) (*DatasetReloadService, *mocks.MockBundleLoader, *cleaning.Holder) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockBundleLoader(ctrl)
	holder := cleaning.NewHolder(&domain.Bundle{ID: "inicial"})

	cfg := &config.Config{DatasetReload: config.DatasetReload{CronSchedule: cron, Enabled: enabled}}
	return NewDatasetReloadService(loader, holder, cfg), loader, holder
}

func TestDatasetReloadService_Reload(t *testing.T) {
	t.Run("Recarga com sucesso troca o snapshot", func(t *testing.T) {
		service, loader, holder := newTestReloadService(t, false, "")

		loader.EXPECT().Load().Return(&domain.Bundle{
			ID:      "novo",
			Monthly: make([]domain.MonthlyRecord, 4),
		}, nil)

		info, err := service.Reload()
		require.NoError(t, err)

		assert.Equal(t, "novo", info.ID)
		assert.Equal(t, 4, info.MonthlyRows)
		assert.Equal(t, "novo", holder.Current().ID)

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, "", status["last_sync_error"])
		assert.Equal(t, "novo", status["bundle"].(domain.BundleInfo).ID)
	})

	t.Run("Recarga com erro mantém o snapshot anterior", func(t *testing.T) {
		service, loader, holder := newTestReloadService(t, false, "")

		loader.EXPECT().Load().Return(nil, errors.New("coluna obrigatória ausente"))

		_, err := service.Reload()
		require.Error(t, err)

		assert.Equal(t, "inicial", holder.Current().ID)
		assert.Equal(t, "coluna obrigatória ausente", service.GetStatus()["last_sync_error"])
	})

	t.Run("Recarga concorrente é recusada", func(t *testing.T) {
		service, _, _ := newTestReloadService(t, false, "")
		service.syncRunning = true

		_, err := service.Reload()
		assert.ErrorIs(t, err, ErrReloadInProgress)
		assert.False(t, service.TriggerManualSync())
	})
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	service, loader, holder := newTestReloadService(t, false, "")

	done := make(chan struct{})
	loader.EXPECT().Load().DoAndReturn(func() (*domain.Bundle, error) {
		defer close(done)
		return &domain.Bundle{ID: "manual"}, nil
	})

	assert.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executou")
	}

	assert.Eventually(t, func() bool {
		return holder.Current().ID == "manual"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetReloadService_TriggerManualSync_Concorrente(t *testing.T) {
	service, loader, holder := newTestReloadService(t, false, "")

	release := make(chan struct{})
	loader.EXPECT().Load().Times(1).DoAndReturn(func() (*domain.Bundle, error) {
		<-release
		return &domain.Bundle{ID: "manual"}, nil
	})

	assert.True(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"], "a recarga deve estar reservada antes do retorno")

	assert.False(t, service.TriggerManualSync())
	_, err := service.Reload()
	assert.ErrorIs(t, err, ErrReloadInProgress)

	close(release)
	assert.Eventually(t, func() bool {
		return holder.Current().ID == "manual" && service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetReloadService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service, _, _ := newTestReloadService(t, false, "cron inválido")
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		service, _, _ := newTestReloadService(t, true, "cron inválido")
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Expressão válida inicia o agendador", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service, _, _ := newTestReloadService(t, true, "0 4 * * *")
		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
	})
}
