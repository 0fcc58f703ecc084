package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/app-store-insights-api/internal/domain"
)

func TestObserveBundle(t *testing.T) {
	loadedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ObserveBundle(&domain.Bundle{
		LoadedAt: loadedAt,
		Monthly:  make([]domain.MonthlyRecord, 48),
		Daily:    make([]domain.DailyRecord, 3),
	})

	assert.Equal(t, 48.0, testutil.ToFloat64(DatasetRows.WithLabelValues("monthly")))
	assert.Equal(t, 3.0, testutil.ToFloat64(DatasetRows.WithLabelValues("daily")))
	assert.Equal(t, float64(loadedAt.Unix()), testutil.ToFloat64(DatasetLoadedAt))

	ObserveBundle(nil)
}

func TestObserveReload(t *testing.T) {
	before := testutil.ToFloat64(DatasetReloadsTotal.WithLabelValues("error"))

	ObserveReload(time.Now(), errors.New("falhou"))

	assert.Equal(t, before+1, testutil.ToFloat64(DatasetReloadsTotal.WithLabelValues("error")))
}
