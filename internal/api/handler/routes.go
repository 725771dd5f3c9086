package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/predicting"
	"github.com/vfg2006/revenue-forecast-api/pkg/middleware"
)

func Healthcheck(service predicting.PredictionService) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Predictions(service predicting.PredictionService, limiter *middleware.IPRateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/predict/:country",
			Method:      http.MethodGet,
			Handler:     PredictCountry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RateLimit(limiter)},
		},
		{
			Path:        "/v1/predict",
			Method:      http.MethodPost,
			Handler:     PredictFromBody(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RateLimit(limiter)},
		},
		{
			Path:    "/v1/predictions/recent",
			Method:  http.MethodGet,
			Handler: RecentPredictions(service),
		},
	}
}

func Metrics(reader MetricsReader) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(reader),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}
