package aggregating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventops/event-insights-api/internal/domain"
)

func ledgerFixture() []domain.LedgerEntry {
	return []domain.LedgerEntry{
		{EventDate: "10/05/2026", Event: "Festival", City: "Recife", State: "PE", Description: "Bilheteria", Amount: 700, Category: "Ingressos", Kind: domain.LedgerRevenue, TicketCount: 60},
		{EventDate: "10/05/2026", Event: "Festival", City: "Recife", State: "PE", Description: "Bar", Amount: 300, Category: "Bar", Kind: domain.LedgerRevenue, TicketCount: 0},
		{EventDate: "10/05/2026", Event: "Festival", City: "Recife", State: "PE", Description: "Estrutura", Amount: 250, Category: "Produção", Kind: domain.LedgerCost, TicketCount: 0},
		{EventDate: "10/05/2026", Event: "Festival", City: "Recife", State: "PE", Description: "Equipe", Amount: 150, Category: "Pessoal", Kind: domain.LedgerCost, TicketCount: 0},
		{EventDate: "10/05/2026", Event: "Festival", City: "Recife", State: "PE", Description: "CORTESIAS", Amount: 0, Category: "Ingressos", Kind: domain.LedgerRevenue, TicketCount: 10},
		{EventDate: "10/05/2026", Event: "Festival", City: "Recife", State: "PE", Description: "Pista", Amount: 0, Category: "Ingressos", Kind: domain.LedgerRevenue, TicketCount: 30},
	}
}

func TestSummarizeLedger(t *testing.T) {
	summary := SummarizeLedger(ledgerFixture())

	assert.Equal(t, float64(1000), summary.Revenue)
	assert.Equal(t, float64(400), summary.Costs)
	assert.Equal(t, float64(600), summary.Result)
	assert.Equal(t, float64(100), summary.TotalTickets)
	assert.Equal(t, float64(10), summary.Courtesies)
	assert.Equal(t, float64(90), summary.PaidTickets)
	assert.Equal(t, float64(10), summary.CourtesyRate)
	assert.Equal(t, float64(250), summary.ROIPercent)
}

func TestSummarizeLedgerEmpty(t *testing.T) {
	summary := SummarizeLedger(nil)

	assert.Zero(t, summary.Result)
	assert.Zero(t, summary.CourtesyRate)
	// Custo zero vira divisor 1, nunca divisão por zero.
	assert.Zero(t, summary.ROIPercent)
}

func TestRollupByCategoryIsOrderInsensitive(t *testing.T) {
	entries := ledgerFixture()
	reversed := make([]domain.LedgerEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}

	direct := RollupByCategory(entries, domain.LedgerRevenue)
	mirrored := RollupByCategory(reversed, domain.LedgerRevenue)

	assert.Equal(t, direct, mirrored)
	require.Len(t, direct, 2)
	assert.Equal(t, NameValue{Name: "Ingressos", Value: 700}, direct[0])
	assert.Equal(t, NameValue{Name: "Bar", Value: 300}, direct[1])
}

func TestCategoryDetails(t *testing.T) {
	details := CategoryDetails(ledgerFixture(), domain.LedgerCost, "Produção")

	require.Len(t, details, 1)
	assert.Equal(t, NameValue{Name: "Estrutura", Value: 250}, details[0])
}

func TestFilterLedger(t *testing.T) {
	entries := append(ledgerFixture(), domain.LedgerEntry{
		EventDate: "20/06/2026", Event: "Festival SP", City: "São Paulo", State: "SP",
		Description: "Bilheteria", Amount: 5000, Category: "Ingressos", Kind: domain.LedgerRevenue,
	})

	filtered := FilterLedger(entries, domain.Filter{City: "São Paulo"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Festival SP", filtered[0].Event)

	assert.Len(t, FilterLedger(entries, domain.Filter{}), len(entries))
	assert.Empty(t, FilterLedger(entries, domain.Filter{State: "RJ"}))
}

func TestTopItemsByQuantityTiesKeepFirstSeenOrder(t *testing.T) {
	items := make([]domain.SalesLineItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, domain.SalesLineItem{
			Type:     DrinkType,
			Name:     fmt.Sprintf("Item %02d", i),
			Quantity: 7,
		})
	}

	top := TopItemsByQuantity(items, DrinkType, 5)

	require.Len(t, top, 5)
	for i, pair := range top {
		assert.Equal(t, fmt.Sprintf("Item %02d", i), pair.Name)
		assert.Equal(t, float64(7), pair.Value)
	}
}

func TestTopItemsByQuantityFiltersType(t *testing.T) {
	items := []domain.SalesLineItem{
		{Type: FoodType, Name: "Hambúrguer", Quantity: 5},
		{Type: DrinkType, Name: "Chopp", Quantity: 120},
		{Type: FoodType, Name: "Hambúrguer", Quantity: 3},
	}

	top := TopItemsByQuantity(items, FoodType, 5)

	require.Len(t, top, 1)
	assert.Equal(t, NameValue{Name: "Hambúrguer", Value: 8}, top[0])
}

func TestCategoryMixKeepsEncounterOrder(t *testing.T) {
	items := make([]domain.SalesLineItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, domain.SalesLineItem{
			Category: fmt.Sprintf("Categoria %d", i),
			Quantity: float64(i),
		})
	}

	mix := CategoryMix(items)

	require.Len(t, mix, 6)
	// Não ordena por valor: vale a ordem de aparição nos dados.
	assert.Equal(t, "Categoria 0", mix[0].Name)
	assert.Equal(t, "Categoria 5", mix[5].Name)
}

func TestSummarizeSales(t *testing.T) {
	items := []domain.SalesLineItem{
		{Quantity: 10, Total: 150},
		{Quantity: 5, Total: 50},
	}

	summary := SummarizeSales(items)

	assert.Equal(t, float64(15), summary.TotalItems)
	assert.Equal(t, float64(200), summary.TotalRevenue)
	assert.InDelta(t, 13.333, summary.AverageTicket, 0.001)
}

func TestAverageTicketByCategory(t *testing.T) {
	items := []domain.SalesLineItem{
		{Category: "Drinks", Quantity: 2, Total: 60},
		{Category: "Cerveja", Quantity: 10, Total: 100},
		{Category: "Drinks", Quantity: 2, Total: 40},
	}

	avgs := AverageTicketByCategory(items, 10)

	require.Len(t, avgs, 2)
	assert.Equal(t, NameValue{Name: "Drinks", Value: 25}, avgs[0])
	assert.Equal(t, NameValue{Name: "Cerveja", Value: 10}, avgs[1])
}

func TestNormalizeTimelineCanonizesAndSortsByCalendar(t *testing.T) {
	points := []domain.TicketSaleTimelinePoint{
		{SaleDate: "2026-01-05", Quantity: 3},
		{SaleDate: "04/01/2026", Quantity: 2},
		{SaleDate: "05/01/2026", Quantity: 1},
		{SaleDate: "data quebrada", Quantity: 9},
	}

	timeline := NormalizeTimeline(points)

	require.Len(t, timeline, 4)
	// Não interpretável ordena antes de tudo e mantém a string original.
	assert.Equal(t, "data quebrada", timeline[0].Date)
	assert.Equal(t, "04/01/2026", timeline[1].Date)
	// As duas grafias da mesma data colapsam na mesma forma canônica e
	// ficam adjacentes na ordenação.
	assert.Equal(t, "05/01/2026", timeline[2].Date)
	assert.Equal(t, "05/01/2026", timeline[3].Date)
	assert.Equal(t, float64(3), timeline[2].Quantity)
	assert.Equal(t, float64(1), timeline[3].Quantity)
}

func TestSummarizeTimeline(t *testing.T) {
	totals := SummarizeTimeline([]domain.TicketSaleTimelinePoint{
		{Quantity: 40, Amount: 2000},
		{Quantity: 10, Amount: 1000},
	})

	assert.Equal(t, float64(3000), totals.TotalRevenue)
	assert.Equal(t, float64(50), totals.TotalTickets)
	assert.Equal(t, float64(60), totals.AverageTicket)
}

func TestTopAgents(t *testing.T) {
	agents := []domain.AgentPerformanceRecord{
		{Passkey: "ana", TicketCount: 20, Revenue: 900},
		{Passkey: "bia", TicketCount: 50, Revenue: 2500},
		{Passkey: "caio", TicketCount: 30, Revenue: 1200},
	}

	top := TopAgents(agents, 200, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "bia", top[0].Passkey)
	assert.Equal(t, float64(25), top[0].Percentage)
	assert.Equal(t, "caio", top[1].Passkey)
	assert.Equal(t, float64(15), top[1].Percentage)
}

func TestTopAgentsZeroTotalTickets(t *testing.T) {
	top := TopAgents([]domain.AgentPerformanceRecord{{Passkey: "ana", TicketCount: 5, Revenue: 100}}, 0, 10)

	require.Len(t, top, 1)
	assert.Zero(t, top[0].Percentage)
}

func TestPaymentRollup(t *testing.T) {
	payments := []domain.PaymentMethodBreakdown{
		{Method: "Pix", TicketCount: 30, Revenue: 1500},
		{Method: "Cartão de Crédito", TicketCount: 40, Revenue: 2600},
		{Method: "Pix", TicketCount: 10, Revenue: 500},
	}

	rollup := PaymentRollup(payments, 100)

	require.Len(t, rollup, 2)
	assert.Equal(t, "Cartão de Crédito", rollup[0].Method)
	assert.Equal(t, float64(40), rollup[0].Percentage)
	assert.Equal(t, "Pix", rollup[1].Method)
	assert.Equal(t, float64(40), rollup[1].TicketCount)
	assert.Equal(t, float64(2000), rollup[1].Revenue)
}

func TestGenderAverages(t *testing.T) {
	entries := []domain.DemographicBreakdown{
		{Category: "Feminino", Percentage: 60, Event: "A"},
		{Category: "Masculino", Percentage: 40, Event: "A"},
		{Category: "Feminino", Percentage: 50, Event: "B"},
		{Category: "Masculino", Percentage: 50, Event: "B"},
	}

	avgs := GenderAverages(entries)

	require.Len(t, avgs, 2)
	assert.Equal(t, DemographicAverage{Category: "Feminino", Percentage: 55}, avgs[0])
	assert.Equal(t, DemographicAverage{Category: "Masculino", Percentage: 45}, avgs[1])
}

func TestAgeAveragesSortByBracketStart(t *testing.T) {
	entries := []domain.DemographicBreakdown{
		{Category: "25-34", Percentage: 30},
		{Category: "Não informado", Percentage: 5},
		{Category: "18-24", Percentage: 40},
		{Category: "45+", Percentage: 10},
		{Category: "35-44", Percentage: 15},
	}

	avgs := AgeAverages(entries)

	require.Len(t, avgs, 5)
	assert.Equal(t, "18-24", avgs[0].Category)
	assert.Equal(t, "25-34", avgs[1].Category)
	assert.Equal(t, "35-44", avgs[2].Category)
	assert.Equal(t, "45+", avgs[3].Category)
	assert.Equal(t, "Não informado", avgs[4].Category)
}

func TestTopStates(t *testing.T) {
	entries := []domain.StateBreakdown{
		{State: "PE", TicketCount: 30, Revenue: 1500},
		{State: "SP", TicketCount: 80, Revenue: 4000},
		{State: "PE", TicketCount: 20, Revenue: 800},
	}

	top := TopStates(entries, 15)

	require.Len(t, top, 2)
	assert.Equal(t, RegionShare{Name: "SP", TicketCount: 80, Revenue: 4000}, top[0])
	assert.Equal(t, RegionShare{Name: "PE", TicketCount: 50, Revenue: 2300}, top[1])
}

func TestTopCitiesDisambiguatesMissingCity(t *testing.T) {
	entries := []domain.CityBreakdown{
		{City: domain.NoCityLabel, Event: "Festival A", TicketCount: 10},
		{City: domain.NoCityLabel, Event: "Festival B", TicketCount: 25},
		{City: "Recife", Event: "Festival A", TicketCount: 5},
	}

	top := TopCities(entries, 15)

	require.Len(t, top, 3)
	assert.Equal(t, "Sem Cidade - Festival B", top[0].Name)
	assert.Equal(t, "Sem Cidade - Festival A", top[1].Name)
	assert.Equal(t, "Recife", top[2].Name)
}

func TestLocationComparison(t *testing.T) {
	entries := []domain.LedgerEntry{
		{City: "Recife", State: "PE", Kind: domain.LedgerRevenue, Amount: 1000},
		{City: "Olinda", State: "PE", Kind: domain.LedgerCost, Amount: 200},
		{City: "Recife", State: "PE", Kind: domain.LedgerCost, Amount: 400},
	}

	results := LocationComparison(entries)

	require.Len(t, results, 2)
	assert.Equal(t, LocationResult{Name: "Recife - PE", Revenue: 1000, Cost: 400, Result: 600}, results[0])
	assert.Equal(t, LocationResult{Name: "Olinda - PE", Revenue: 0, Cost: 200, Result: -200}, results[1])
}

func TestEfficiencyByLocation(t *testing.T) {
	entries := []domain.LedgerEntry{
		{City: "Recife", State: "PE", Kind: domain.LedgerRevenue, Amount: 1000, TicketCount: 90},
		{City: "Recife", State: "PE", Kind: domain.LedgerRevenue, Description: domain.CourtesyDescription, TicketCount: 10},
		{City: "Recife", State: "PE", Kind: domain.LedgerCost, Amount: 400},
	}

	report := EfficiencyByLocation(entries)

	require.Len(t, report, 1)
	assert.Equal(t, "Recife - PE", report[0].Name)
	assert.Equal(t, float64(600), report[0].Profit)
	assert.Equal(t, float64(10), report[0].CourtesyRate)
	assert.Equal(t, float64(100), report[0].TotalTickets)
}

func TestCorrelationByLocation(t *testing.T) {
	entries := []domain.LedgerEntry{
		{City: "Recife", State: "PE", Kind: domain.LedgerRevenue, Amount: 9999, TicketCount: 77},
		{City: "Olinda", State: "PE", Kind: domain.LedgerCost, Amount: 200},
	}
	items := []domain.SalesLineItem{
		{City: "Recife", State: "PE", Quantity: 10, Total: 350.5},
		{City: "Recife", State: "PE", Quantity: 5, Total: 149.5},
		{City: "Natal", State: "RN", Quantity: 99, Total: 999},
	}

	points := CorrelationByLocation(entries, items)

	// Só as praças do razão entram, e os números são das vendas do bar —
	// nunca dos ingressos/valores do próprio razão. Olinda não vendeu nada
	// no bar e Natal não está no razão: ambas ficam de fora.
	require.Len(t, points, 1)
	assert.Equal(t, LocationCorrelation{Name: "Recife - PE", ItemCount: 15, BarRevenue: 500}, points[0])
}

func TestCorrelationByLocationLedgerOnly(t *testing.T) {
	entries := []domain.LedgerEntry{
		{City: "Recife", State: "PE", Kind: domain.LedgerRevenue, Amount: 9999, TicketCount: 77},
	}

	points := CorrelationByLocation(entries, nil)

	// Sem linhas de venda do bar não há tuplas, por mais movimento que o
	// razão tenha.
	assert.Empty(t, points)
}
