package handler

import (
	"net/http"

	"github.com/eventops/event-insights-api/internal/api/handler/router"
	"github.com/eventops/event-insights-api/internal/usecases/assembling"
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

func Datasets(service assembling.Assembler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodGet,
			Handler: GetDatasets(service),
		},
	}
}

func Insights(service assembling.Assembler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/sales",
			Method:  http.MethodGet,
			Handler: GetSalesInsights(service),
		},
		{
			Path:    "/v1/insights/finance",
			Method:  http.MethodGet,
			Handler: GetFinanceInsights(service),
		},
		{
			Path:    "/v1/insights/finance/categories/:kind/:category",
			Method:  http.MethodGet,
			Handler: GetFinanceCategoryDetails(service),
		},
		{
			Path:    "/v1/insights/tickets",
			Method:  http.MethodGet,
			Handler: GetTicketInsights(service),
		},
		{
			Path:    "/v1/insights/demographics",
			Method:  http.MethodGet,
			Handler: GetDemographicInsights(service),
		},
		{
			Path:    "/v1/insights/regions",
			Method:  http.MethodGet,
			Handler: GetRegionInsights(service),
		},
		{
			Path:    "/v1/insights/reports",
			Method:  http.MethodGet,
			Handler: GetReportInsights(service),
		},
	}
}
