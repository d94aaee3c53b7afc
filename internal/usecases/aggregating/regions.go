package aggregating

import (
	"fmt"
	"sort"

	"github.com/eventops/event-insights-api/internal/domain"
)

// RegionShare é um estado ou cidade ranqueado por ingressos vendidos.
type RegionShare struct {
	Name        string  `json:"name"`
	TicketCount float64 `json:"ingressos"`
	Revenue     float64 `json:"receita"`
}

// TopStates agrupa os ingressos por estado e devolve os n maiores,
// decrescente por ingressos.
func TopStates(entries []domain.StateBreakdown, n int) []RegionShare {
	tickets := newGroupSum()
	revenue := newGroupSum()
	for _, entry := range entries {
		tickets.add(entry.State, entry.TicketCount)
		revenue.add(entry.State, entry.Revenue)
	}
	return topRegions(tickets, revenue, n)
}

// TopCities agrupa por cidade e devolve os n maiores. Cidades não informadas
// chegam como "Sem Cidade" e são desambiguadas pelo evento, para que dois
// eventos sem cidade não sejam somados num balde só.
func TopCities(entries []domain.CityBreakdown, n int) []RegionShare {
	tickets := newGroupSum()
	revenue := newGroupSum()
	for _, entry := range entries {
		name := entry.City
		if name == domain.NoCityLabel {
			name = fmt.Sprintf("%s - %s", domain.NoCityLabel, entry.Event)
		}
		tickets.add(name, entry.TicketCount)
		revenue.add(name, entry.Revenue)
	}
	return topRegions(tickets, revenue, n)
}

func topRegions(tickets, revenue *groupSum, n int) []RegionShare {
	shares := make([]RegionShare, 0, len(tickets.order))
	for _, name := range tickets.order {
		shares = append(shares, RegionShare{
			Name:        name,
			TicketCount: tickets.totals[name],
			Revenue:     revenue.totals[name],
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].TicketCount > shares[j].TicketCount
	})

	if n >= 0 && len(shares) > n {
		shares = shares[:n]
	}
	return shares
}
