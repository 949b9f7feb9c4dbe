package handler

import (
	"net/http"

	"github.com/socialpulse/follower-report-api/internal/api/handler/router"
	"github.com/socialpulse/follower-report-api/internal/usecases/reporting"
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

func Report(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetFollowerReport(service),
		},
	}
}
