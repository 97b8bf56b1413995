package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis/run",
			Method:  http.MethodPost,
			Handler: RunAnalysis(service),
		},
		{
			Path:    "/v1/analysis",
			Method:  http.MethodGet,
			Handler: GetAnalysisStatus(service),
		},
	}
}

func Alerts(service alerting.AlertLogger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: GetAlerts(service),
		},
		{
			Path:    "/v1/alerts",
			Method:  http.MethodDelete,
			Handler: ClearAlerts(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
