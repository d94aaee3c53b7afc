// Package aggregating deriva os indicadores e recortes consumidos pelas
// telas do dashboard. Todas as funções são puras: recebem as coleções
// normalizadas e um domain.Filter imutável, não guardam estado entre
// chamadas e nunca alteram a entrada.
package aggregating

import (
	"github.com/eventops/event-insights-api/internal/domain"
)

// NameValue é um par rótulo/valor usado pelos rollups e rankings.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FilterSales aplica o filtro ativo sobre as linhas de venda do bar.
func FilterSales(items []domain.SalesLineItem, filter domain.Filter) []domain.SalesLineItem {
	if filter.IsZero() {
		return items
	}

	out := make([]domain.SalesLineItem, 0, len(items))
	for _, item := range items {
		if filter.Matches(item.EventDate, item.City, item.State) {
			out = append(out, item)
		}
	}
	return out
}

// FilterLedger aplica o filtro ativo sobre o razão financeiro.
func FilterLedger(entries []domain.LedgerEntry, filter domain.Filter) []domain.LedgerEntry {
	if filter.IsZero() {
		return entries
	}

	out := make([]domain.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		if filter.Matches(entry.EventDate, entry.City, entry.State) {
			out = append(out, entry)
		}
	}
	return out
}

// FilterTimeline aplica o filtro ativo sobre a linha do tempo de ingressos.
func FilterTimeline(points []domain.TicketSaleTimelinePoint, filter domain.Filter) []domain.TicketSaleTimelinePoint {
	if filter.IsZero() {
		return points
	}

	out := make([]domain.TicketSaleTimelinePoint, 0, len(points))
	for _, point := range points {
		if filter.Matches(point.EventDate, point.City, point.State) {
			out = append(out, point)
		}
	}
	return out
}

// FilterPayments aplica o filtro ativo sobre os meios de pagamento.
func FilterPayments(payments []domain.PaymentMethodBreakdown, filter domain.Filter) []domain.PaymentMethodBreakdown {
	if filter.IsZero() {
		return payments
	}

	out := make([]domain.PaymentMethodBreakdown, 0, len(payments))
	for _, payment := range payments {
		if filter.Matches(payment.EventDate, payment.City, payment.State) {
			out = append(out, payment)
		}
	}
	return out
}

// FilterStates aplica o filtro ao dataset de estados. O dataset não carrega
// cidade, então a dimensão cidade não restringe aqui; o estado da própria
// linha responde pelo filtro de estado.
func FilterStates(entries []domain.StateBreakdown, filter domain.Filter) []domain.StateBreakdown {
	if filter.IsZero() {
		return entries
	}

	out := make([]domain.StateBreakdown, 0, len(entries))
	for _, entry := range entries {
		if filter.EventDate != "" && entry.EventDate != filter.EventDate {
			continue
		}
		if filter.State != "" && entry.State != filter.State {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// FilterCities aplica o filtro ao dataset de cidades. Sem coluna de estado,
// a dimensão estado não restringe aqui.
func FilterCities(entries []domain.CityBreakdown, filter domain.Filter) []domain.CityBreakdown {
	if filter.IsZero() {
		return entries
	}

	out := make([]domain.CityBreakdown, 0, len(entries))
	for _, entry := range entries {
		if filter.EventDate != "" && entry.EventDate != filter.EventDate {
			continue
		}
		if filter.City != "" && entry.City != filter.City {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// groupSum soma value por key preservando a ordem de primeira aparição das
// chaves — é isso que dá o desempate estável dos top-N.
type groupSum struct {
	order  []string
	totals map[string]float64
}

func newGroupSum() *groupSum {
	return &groupSum{totals: make(map[string]float64)}
}

func (g *groupSum) add(key string, value float64) {
	if _, ok := g.totals[key]; !ok {
		g.order = append(g.order, key)
	}
	g.totals[key] += value
}

func (g *groupSum) pairs() []NameValue {
	out := make([]NameValue, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, NameValue{Name: key, Value: g.totals[key]})
	}
	return out
}
