package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/dashboard"
)

// HealthcheckHandler responde com o horário atual e o snapshot em uso
func HealthcheckHandler(bundles dashboard.BundleProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if current := bundles.Current(); current != nil {
			body["bundle_id"] = current.ID
			body["loaded_at"] = current.LoadedAt.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
