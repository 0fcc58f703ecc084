package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
	"github.com/vfg2006/app-store-insights-api/internal/scheduler"
	"github.com/vfg2006/app-store-insights-api/pkg/apiErrors"
	"github.com/vfg2006/app-store-insights-api/pkg/log"
	"github.com/vfg2006/app-store-insights-api/pkg/middleware"
)

// ReloadDataset relê os arquivos de origem. Com ?async=true apenas dispara a recarga e responde 202.
func ReloadDataset(service scheduler.DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			logger = logger.WithField("user_email", userClaims.UserEmail)
		}

		async, _ := strconv.ParseBool(r.URL.Query().Get("async"))
		if async {
			if !service.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrReloadInProcess, "Recarga do dataset já em andamento", nil)
				return
			}

			logger.Info("dataset: recarga assíncrona iniciada")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Recarga do dataset iniciada",
			})
			return
		}

		info, err := service.Reload()
		if err != nil {
			if errors.Is(err, scheduler.ErrReloadInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrReloadInProcess, "Recarga do dataset já em andamento", nil)
				return
			}

			logger.WithError(err).Error("dataset: falha na recarga")
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
			return
		}

		logger.WithField("bundle_id", info.ID).Info("dataset: recarga concluída")
		writeJSON(w, r, map[string]any{
			"message": "Dataset recarregado",
			"bundle":  info,
		})
	}
}

// GetDatasetStatus retorna o estado do agendador e do snapshot em uso
func GetDatasetStatus(service scheduler.DatasetReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.GetStatus())
	}
}
