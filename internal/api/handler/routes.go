package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/app-store-insights-api/internal/api/handler/router"
	"github.com/vfg2006/app-store-insights-api/internal/scheduler"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/app-store-insights-api/pkg/middleware"
)

func Healthcheck(bundles dashboard.BundleProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(bundles),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/dashboard/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/dashboard/detail",
			Method:  http.MethodGet,
			Handler: GetDetail(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dataset(service scheduler.DatasetReloader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/dataset/reload",
			Method:      http.MethodPost,
			Handler:     ReloadDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/dataset/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
