package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-insights-api/internal/config"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/cleaning"
	"github.com/vfg2006/app-store-insights-api/pkg/telemetry"
)

var ErrReloadInProgress = errors.New("recarga do dataset já em andamento")

// DatasetReloadConfig representa a configuração do agendador de recarga
type DatasetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BundleStore publica o snapshot recarregado
type BundleStore interface {
	Current() *domain.Bundle
	Replace(bundle *domain.Bundle) *domain.Bundle
}

//go:generate mockgen -source=dataset_reload.go -destination=mocks/mock_reloader.go -package=mocks

// DatasetReloader é o contrato consumido pelas rotas administrativas
type DatasetReloader interface {
	Reload() (domain.BundleInfo, error)
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// DatasetReloadService relê os arquivos de origem e troca o snapshot em uso.
// Uma recarga com erro mantém o snapshot anterior.
type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	config              DatasetReloadConfig
	loader              cleaning.BundleLoader
	store               BundleStore
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewDatasetReloadService cria uma nova instância do serviço de recarga
func NewDatasetReloadService(loader cleaning.BundleLoader, store BundleStore, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: appConfig.DatasetReload.CronSchedule,
		SyncEnabled:  appConfig.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		loader:    loader,
		store:     store,
	}
}

// Start inicia o agendador
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Reload(); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// Reload executa uma recarga completa e publica o novo snapshot
func (s *DatasetReloadService) Reload() (domain.BundleInfo, error) {
	startTime, ok := s.beginSync()
	if !ok {
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return domain.BundleInfo{}, ErrReloadInProgress
	}
	return s.runReload(startTime)
}

// TriggerManualSync inicia manualmente uma recarga em background.
// A recarga é reservada antes de retornar, então true garante que ela vai rodar.
func (s *DatasetReloadService) TriggerManualSync() bool {
	startTime, ok := s.beginSync()
	if !ok {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go s.runReload(startTime)
	return true
}

// beginSync marca a recarga como em andamento se nenhuma outra estiver rodando
func (s *DatasetReloadService) beginSync() (time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return time.Time{}, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return s.lastSyncStartedAt, true
}

// runReload supõe que beginSync já reservou a execução
func (s *DatasetReloadService) runReload(startTime time.Time) (domain.BundleInfo, error) {
	bundle, err := s.loader.Load()
	telemetry.ObserveReload(startTime, err)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Falha ao recarregar dataset, mantendo o snapshot anterior")
		return domain.BundleInfo{}, err
	}

	s.lastSyncError = ""
	previous := s.store.Replace(bundle)
	telemetry.ObserveBundle(bundle)

	fields := logrus.Fields{
		"bundle_id": bundle.ID,
		"duration":  time.Since(startTime).String(),
	}
	if previous != nil {
		fields["previous_bundle_id"] = previous.ID
	}
	logrus.WithFields(fields).Info("Dataset recarregado")

	return bundle.Info(), nil
}

// GetStatus retorna o status atual do agendador e do snapshot em uso
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}

	if current := s.store.Current(); current != nil {
		status["bundle"] = current.Info()
	}

	return status
}
