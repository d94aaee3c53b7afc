package aggregating

import (
	"github.com/eventops/event-insights-api/internal/domain"
)

// LocationEfficiency resume a operação de um local: lucro, taxa de cortesia
// e ingressos totais, tudo derivado do razão financeiro.
type LocationEfficiency struct {
	Name         string  `json:"name"`
	Profit       float64 `json:"profit"`
	CourtesyRate float64 `json:"courtesyRate"`
	TotalTickets float64 `json:"totalTix"`
}

// EfficiencyByLocation calcula o relatório de eficiência por local, na ordem
// de primeira aparição de cada local no razão.
func EfficiencyByLocation(entries []domain.LedgerEntry) []LocationEfficiency {
	order, byLocation := ledgerByLocation(entries)

	out := make([]LocationEfficiency, 0, len(order))
	for _, name := range order {
		summary := SummarizeLedger(byLocation[name])
		out = append(out, LocationEfficiency{
			Name:         name,
			Profit:       summary.Result,
			CourtesyRate: summary.CourtesyRate,
			TotalTickets: summary.TotalTickets,
		})
	}
	return out
}

// LocationCorrelation é o ponto de dispersão volume x receita do bar de um
// local, usado no relatório de correlação.
type LocationCorrelation struct {
	Name       string  `json:"name"`
	ItemCount  float64 `json:"Quantidade"`
	BarRevenue float64 `json:"Receita"`
}

// CorrelationByLocation cruza volume e receita das vendas do bar por local.
// O conjunto de locais vem do razão financeiro; os números projetados vêm
// das linhas de venda (quantidade e valor total). Locais sem nenhuma venda
// do bar ficam de fora.
func CorrelationByLocation(entries []domain.LedgerEntry, items []domain.SalesLineItem) []LocationCorrelation {
	order, _ := ledgerByLocation(entries)

	quantity := newGroupSum()
	revenue := newGroupSum()
	for _, item := range items {
		key := locationKey(item.City, item.State)
		quantity.add(key, item.Quantity)
		revenue.add(key, item.Total)
	}

	out := make([]LocationCorrelation, 0, len(order))
	for _, name := range order {
		qty := quantity.totals[name]
		rev := revenue.totals[name]
		if qty == 0 && rev == 0 {
			continue
		}
		out = append(out, LocationCorrelation{
			Name:       name,
			ItemCount:  qty,
			BarRevenue: rev,
		})
	}
	return out
}

func ledgerByLocation(entries []domain.LedgerEntry) ([]string, map[string][]domain.LedgerEntry) {
	order := make([]string, 0)
	byLocation := make(map[string][]domain.LedgerEntry)
	for _, entry := range entries {
		key := locationKey(entry.City, entry.State)
		if _, ok := byLocation[key]; !ok {
			order = append(order, key)
		}
		byLocation[key] = append(byLocation[key], entry)
	}
	return order, byLocation
}
