package aggregating

import (
	"sort"
	"strconv"
	"strings"

	"github.com/eventops/event-insights-api/internal/domain"
)

// DemographicAverage é uma categoria demográfica com a média das
// porcentagens informadas por evento.
type DemographicAverage struct {
	Category   string  `json:"categoria"`
	Percentage float64 `json:"porcentagem"`
}

// GenderAverages agrega o recorte de gênero de todos os eventos (o recorte
// demográfico é sempre global, nunca filtrado) e ordena pela média,
// decrescente.
func GenderAverages(entries []domain.DemographicBreakdown) []DemographicAverage {
	averages := averageByCategory(entries)
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Percentage > averages[j].Percentage
	})
	return averages
}

// AgeAverages agrega o recorte etário e ordena pela idade inicial da faixa
// ("18-24" antes de "25-34"); faixas sem prefixo numérico vão para o fim.
func AgeAverages(entries []domain.DemographicBreakdown) []DemographicAverage {
	averages := averageByCategory(entries)
	sort.SliceStable(averages, func(i, j int) bool {
		return bracketStart(averages[i].Category) < bracketStart(averages[j].Category)
	})
	return averages
}

func averageByCategory(entries []domain.DemographicBreakdown) []DemographicAverage {
	sums := newGroupSum()
	counts := newGroupSum()
	for _, entry := range entries {
		sums.add(entry.Category, entry.Percentage)
		counts.add(entry.Category, 1)
	}

	averages := make([]DemographicAverage, 0, len(sums.order))
	for _, category := range sums.order {
		averages = append(averages, DemographicAverage{
			Category:   category,
			Percentage: sums.totals[category] / counts.totals[category],
		})
	}
	return averages
}

func bracketStart(category string) int {
	head := strings.TrimSpace(strings.SplitN(category, "-", 2)[0])
	head = strings.TrimSuffix(head, "+")
	start, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 999
	}
	return start
}
