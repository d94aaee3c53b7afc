package aggregating

import (
	"sort"

	"github.com/eventops/event-insights-api/internal/domain"
)

// Tipos de item do ponto de venda como escritos na planilha.
const (
	FoodType  = "Comida"
	DrinkType = "Bebida"
)

// SalesSummary são os KPIs da tela de vendas do bar.
type SalesSummary struct {
	TotalItems    float64 `json:"totalItems"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AverageTicket float64 `json:"averageTicket"`
}

// SummarizeSales soma itens vendidos e receita bruta; o ticket médio é
// receita sobre itens (0 quando não houve venda).
func SummarizeSales(items []domain.SalesLineItem) SalesSummary {
	summary := SalesSummary{}
	for _, item := range items {
		summary.TotalItems += item.Quantity
		summary.TotalRevenue += item.Total
	}

	if summary.TotalItems > 0 {
		summary.AverageTicket = summary.TotalRevenue / summary.TotalItems
	}

	return summary
}

// TopItemsByQuantity agrupa os itens de um tipo ("Comida"/"Bebida") por nome,
// soma as quantidades, ordena decrescente e trunca em n. Empates mantêm a
// ordem de primeira aparição.
func TopItemsByQuantity(items []domain.SalesLineItem, itemType string, n int) []NameValue {
	group := newGroupSum()
	for _, item := range items {
		if item.Type != itemType {
			continue
		}
		group.add(item.Name, item.Quantity)
	}

	pairs := group.pairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Value > pairs[j].Value
	})

	return truncate(pairs, n)
}

// CategoryMix soma as quantidades por categoria e devolve as seis primeiras
// categorias na ordem em que aparecem nos dados (a tela de radar não ordena).
func CategoryMix(items []domain.SalesLineItem) []NameValue {
	group := newGroupSum()
	for _, item := range items {
		group.add(item.Category, item.Quantity)
	}

	return truncate(group.pairs(), 6)
}

// AverageTicketByCategory calcula receita/quantidade por categoria e devolve
// as n maiores, decrescente.
func AverageTicketByCategory(items []domain.SalesLineItem, n int) []NameValue {
	revenue := newGroupSum()
	quantity := newGroupSum()
	for _, item := range items {
		revenue.add(item.Category, item.Total)
		quantity.add(item.Category, item.Quantity)
	}

	pairs := make([]NameValue, 0, len(revenue.order))
	for _, category := range revenue.order {
		avg := 0.0
		if qty := quantity.totals[category]; qty > 0 {
			avg = revenue.totals[category] / qty
		}
		pairs = append(pairs, NameValue{Name: category, Value: avg})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Value > pairs[j].Value
	})

	return truncate(pairs, n)
}

func truncate(pairs []NameValue, n int) []NameValue {
	if n >= 0 && len(pairs) > n {
		return pairs[:n]
	}
	return pairs
}
