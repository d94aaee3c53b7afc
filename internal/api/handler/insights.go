package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/eventops/event-insights-api/internal/domain"
	"github.com/eventops/event-insights-api/internal/usecases/aggregating"
	"github.com/eventops/event-insights-api/internal/usecases/assembling"
	"github.com/eventops/event-insights-api/pkg/apiErrors"
	"github.com/eventops/event-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// filterFromRequest lê o filtro ativo da query string. Ausência de parâmetro
// significa "sem filtro" naquela dimensão.
func filterFromRequest(r *http.Request) domain.Filter {
	query := r.URL.Query()
	return domain.Filter{
		EventDate: query.Get("data"),
		City:      query.Get("cidade"),
		State:     query.Get("estado"),
	}
}

// assemble roda a montagem e trata o erro de indisponibilidade num lugar só.
// Devolve nil quando a resposta de erro já foi escrita.
func assemble(w http.ResponseWriter, r *http.Request, service assembling.Assembler) *domain.Payload {
	logger := log.ForContext(r.Context())

	payload, err := service.Assemble(r.Context())
	if err != nil {
		logger.WithError(err).Error("insights: falha ao montar o payload")
		apiErrors.WriteError(w, apiErrors.ErrSpreadsheetData, "Dados da planilha indisponíveis", nil)
		return nil
	}

	return payload
}

func respond(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("insights: falha ao serializar a resposta")
	}
}

// SalesInsights é a resposta da tela de vendas do bar.
type SalesInsights struct {
	Summary       aggregating.SalesSummary `json:"summary"`
	TopFood       []aggregating.NameValue  `json:"topFood"`
	TopDrinks     []aggregating.NameValue  `json:"topDrinks"`
	CategoryMix   []aggregating.NameValue  `json:"categoryMix"`
	AverageTicket []aggregating.NameValue  `json:"averageTicketByCategory"`
}

func GetSalesInsights(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := assemble(w, r, service)
		if payload == nil {
			return
		}

		items := aggregating.FilterSales(payload.Zig, filterFromRequest(r))

		respond(w, r, SalesInsights{
			Summary:       aggregating.SummarizeSales(items),
			TopFood:       aggregating.TopItemsByQuantity(items, aggregating.FoodType, 5),
			TopDrinks:     aggregating.TopItemsByQuantity(items, aggregating.DrinkType, 5),
			CategoryMix:   aggregating.CategoryMix(items),
			AverageTicket: aggregating.AverageTicketByCategory(items, 10),
		})
	})
}

// FinanceInsights é a resposta da tela financeira.
type FinanceInsights struct {
	Summary            aggregating.FinanceSummary   `json:"summary"`
	CostsByCategory    []aggregating.NameValue      `json:"costsByCategory"`
	RevenueByCategory  []aggregating.NameValue      `json:"revenueByCategory"`
	LocationComparison []aggregating.LocationResult `json:"locationComparison"`
}

func GetFinanceInsights(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := assemble(w, r, service)
		if payload == nil {
			return
		}

		entries := aggregating.FilterLedger(payload.Finance, filterFromRequest(r))

		respond(w, r, FinanceInsights{
			Summary:           aggregating.SummarizeLedger(entries),
			CostsByCategory:   aggregating.RollupByCategory(entries, domain.LedgerCost),
			RevenueByCategory: aggregating.RollupByCategory(entries, domain.LedgerRevenue),
			// O benchmark de praças compara edições entre si, então ignora o
			// filtro ativo de propósito.
			LocationComparison: aggregating.LocationComparison(payload.Finance),
		})
	})
}

var ledgerKindByParam = map[string]domain.LedgerKind{
	"custo":   domain.LedgerCost,
	"receita": domain.LedgerRevenue,
}

// GetFinanceCategoryDetails é o drill-down de uma categoria do razão: as
// linhas individuais de um kind/categoria, decrescente pelo valor.
func GetFinanceCategoryDetails(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		kind, ok := ledgerKindByParam[params.ByName("kind")]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "kind deve ser 'custo' ou 'receita'", nil)
			return
		}

		payload := assemble(w, r, service)
		if payload == nil {
			return
		}

		entries := aggregating.FilterLedger(payload.Finance, filterFromRequest(r))

		respond(w, r, aggregating.CategoryDetails(entries, kind, params.ByName("category")))
	})
}

// TicketInsights é a resposta da tela de ingressos.
type TicketInsights struct {
	Timeline  []aggregating.TimelineEntry `json:"timeline"`
	Totals    aggregating.TimelineTotals  `json:"totals"`
	TopAgents []aggregating.AgentShare    `json:"topAgents"`
	Payments  []aggregating.PaymentShare  `json:"payments"`
}

func GetTicketInsights(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := assemble(w, r, service)
		if payload == nil {
			return
		}

		filter := filterFromRequest(r)
		points := aggregating.FilterTimeline(payload.Timeline, filter)
		payments := aggregating.FilterPayments(payload.Payment, filter)
		totals := aggregating.SummarizeTimeline(points)

		respond(w, r, TicketInsights{
			Timeline:  aggregating.NormalizeTimeline(points),
			Totals:    totals,
			TopAgents: aggregating.TopAgents(payload.Agents, totals.TotalTickets, 10),
			Payments:  aggregating.PaymentRollup(payments, totals.TotalTickets),
		})
	})
}

// DemographicInsights é a resposta da tela demográfica. O recorte é sempre
// global, a média simples entre eventos é uma aproximação conhecida.
type DemographicInsights struct {
	Gender []aggregating.DemographicAverage `json:"gender"`
	Age    []aggregating.DemographicAverage `json:"age"`
}

func GetDemographicInsights(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := assemble(w, r, service)
		if payload == nil {
			return
		}

		respond(w, r, DemographicInsights{
			Gender: aggregating.GenderAverages(payload.Gender),
			Age:    aggregating.AgeAverages(payload.Age),
		})
	})
}

// RegionInsights é a resposta da tela de regiões.
type RegionInsights struct {
	States []aggregating.RegionShare `json:"states"`
	Cities []aggregating.RegionShare `json:"cities"`
}

func GetRegionInsights(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := assemble(w, r, service)
		if payload == nil {
			return
		}

		filter := filterFromRequest(r)

		respond(w, r, RegionInsights{
			States: aggregating.TopStates(aggregating.FilterStates(payload.States, filter), 15),
			Cities: aggregating.TopCities(aggregating.FilterCities(payload.Cities, filter), 15),
		})
	})
}

// ReportInsights é a resposta da tela de relatórios executivos.
type ReportInsights struct {
	Efficiency    []aggregating.LocationEfficiency  `json:"efficiency"`
	AverageTicket []aggregating.NameValue           `json:"averageTicketByCategory"`
	Correlation   []aggregating.LocationCorrelation `json:"correlation"`
}

func GetReportInsights(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := assemble(w, r, service)
		if payload == nil {
			return
		}

		filter := filterFromRequest(r)
		entries := aggregating.FilterLedger(payload.Finance, filter)
		items := aggregating.FilterSales(payload.Zig, filter)

		respond(w, r, ReportInsights{
			Efficiency:    aggregating.EfficiencyByLocation(entries),
			AverageTicket: aggregating.AverageTicketByCategory(items, 10),
			Correlation:   aggregating.CorrelationByLocation(entries, items),
		})
	})
}
