package aggregating

import (
	"fmt"
	"sort"

	"github.com/eventops/event-insights-api/internal/domain"
	"github.com/eventops/event-insights-api/pkg/utils"
)

// FinanceSummary são os indicadores de saúde financeira de um recorte do
// razão.
type FinanceSummary struct {
	Revenue      float64 `json:"revenue"`
	Costs        float64 `json:"costs"`
	Result       float64 `json:"result"`
	TotalTickets float64 `json:"totalTickets"`
	PaidTickets  float64 `json:"paidTickets"`
	Courtesies   float64 `json:"courtesies"`
	CourtesyRate float64 `json:"courtesyRate"`
	ROIPercent   float64 `json:"roiPercent"`
}

// SummarizeLedger calcula o resultado líquido (receitas menos custos — o
// valor é sempre positivo na planilha, é o kind que decide o sinal) e a
// separação pagos/cortesias dos ingressos.
func SummarizeLedger(entries []domain.LedgerEntry) FinanceSummary {
	summary := FinanceSummary{}

	for _, entry := range entries {
		switch entry.Kind {
		case domain.LedgerRevenue:
			summary.Revenue += entry.Amount
		case domain.LedgerCost:
			summary.Costs += entry.Amount
		}

		summary.TotalTickets += entry.TicketCount
		if entry.Description == domain.CourtesyDescription {
			summary.Courtesies += entry.TicketCount
		}
	}

	summary.Result = summary.Revenue - summary.Costs
	summary.PaidTickets = summary.TotalTickets - summary.Courtesies
	if summary.TotalTickets > 0 {
		summary.CourtesyRate = utils.RoundWithTwoDecimalPlace(summary.Courtesies / summary.TotalTickets * 100)
	}

	costs := summary.Costs
	if costs == 0 {
		costs = 1
	}
	summary.ROIPercent = utils.RoundWithTwoDecimalPlace(summary.Revenue / costs * 100)

	return summary
}

// RollupByCategory soma os valores das linhas de um kind por categoria,
// decrescente pelo total.
func RollupByCategory(entries []domain.LedgerEntry, kind domain.LedgerKind) []NameValue {
	group := newGroupSum()
	for _, entry := range entries {
		if entry.Kind != kind {
			continue
		}
		group.add(entry.Category, entry.Amount)
	}

	pairs := group.pairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Value > pairs[j].Value
	})

	return pairs
}

// CategoryDetails lista as linhas individuais de uma categoria de um kind,
// decrescente pelo valor — é o drill-down de um clique na barra/fatia.
func CategoryDetails(entries []domain.LedgerEntry, kind domain.LedgerKind, category string) []NameValue {
	var details []NameValue
	for _, entry := range entries {
		if entry.Kind != kind || entry.Category != category {
			continue
		}
		details = append(details, NameValue{Name: entry.Description, Value: entry.Amount})
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Value > details[j].Value
	})

	return details
}

// LocationResult compara receita, custo e resultado de uma praça
// ("Cidade - Estado").
type LocationResult struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Result  float64 `json:"result"`
}

// LocationComparison agrega o razão por praça, descarta praças sem movimento
// e devolve as cinco primeiras na ordem de aparição (benchmark de edições).
func LocationComparison(entries []domain.LedgerEntry) []LocationResult {
	revenue := newGroupSum()
	cost := newGroupSum()
	for _, entry := range entries {
		loc := locationKey(entry.City, entry.State)
		switch entry.Kind {
		case domain.LedgerRevenue:
			revenue.add(loc, entry.Amount)
			cost.add(loc, 0)
		case domain.LedgerCost:
			cost.add(loc, entry.Amount)
			revenue.add(loc, 0)
		}
	}

	var results []LocationResult
	for _, loc := range revenue.order {
		rev := revenue.totals[loc]
		cst := cost.totals[loc]
		if rev == 0 && cst == 0 {
			continue
		}
		results = append(results, LocationResult{
			Name:    loc,
			Revenue: rev,
			Cost:    cst,
			Result:  rev - cst,
		})
	}

	if len(results) > 5 {
		results = results[:5]
	}
	return results
}

func locationKey(city, state string) string {
	return fmt.Sprintf("%s - %s", city, state)
}
