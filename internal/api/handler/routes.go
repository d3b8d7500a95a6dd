package handler

import (
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/api/handler/router"
	"github.com/vfg2006/store-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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

func Dashboard(service reporting.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySeries(service),
		},
		{
			Path:    "/v1/dashboard/quarterly",
			Method:  http.MethodGet,
			Handler: GetQuarterlySeries(service),
		},
		{
			Path:    "/v1/dashboard/totals",
			Method:  http.MethodGet,
			Handler: GetTotals(service),
		},
		{
			Path:    "/v1/dashboard/stores",
			Method:  http.MethodGet,
			Handler: GetStores(service),
		},
		{
			Path:    "/v1/dashboard/meta",
			Method:  http.MethodGet,
			Handler: GetSnapshotMeta(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: TriggerRefresh(service),
		},
	}
}
