package aggregating

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/eventops/event-insights-api/internal/domain"
)

// TimelineEntry é um ponto da linha do tempo com a data de venda já
// canonizada para exibição.
type TimelineEntry struct {
	Date      string  `json:"data"`
	Quantity  float64 `json:"quantidade"`
	Amount    float64 `json:"valor"`
	EventDate string  `json:"dataEvento"`
	Event     string  `json:"evento"`
	City      string  `json:"cidade"`
	State     string  `json:"estado"`
}

// TimelineTotals são os KPIs da tela de ingressos, calculados sobre a linha
// do tempo inteira (pontos de data repetida são somados, nunca deduplicados).
type TimelineTotals struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalTickets  float64 `json:"totalTickets"`
	AverageTicket float64 `json:"averageTicket"`
}

// NormalizeTimeline canoniza as datas de venda (DD/MM/YYYY ou YYYY-MM-DD,
// desambiguadas pelo tamanho do primeiro segmento) para a forma de exibição
// DD/MM/YYYY e ordena pelo calendário, crescente. Datas não interpretáveis
// passam adiante com a data-sentinela mais antiga em vez de serem perdidas.
func NormalizeTimeline(points []domain.TicketSaleTimelinePoint) []TimelineEntry {
	type sortable struct {
		entry TimelineEntry
		when  time.Time
	}

	entries := make([]sortable, 0, len(points))
	for _, point := range points {
		when, display := normalizeSaleDate(point.SaleDate)
		entries = append(entries, sortable{
			when: when,
			entry: TimelineEntry{
				Date:      display,
				Quantity:  point.Quantity,
				Amount:    point.Amount,
				EventDate: point.EventDate,
				Event:     point.Event,
				City:      point.City,
				State:     point.State,
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].when.Before(entries[j].when)
	})

	out := make([]TimelineEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.entry)
	}
	return out
}

// normalizeSaleDate devolve o instante para ordenação e a forma de exibição.
// Não interpretável => sentinela (zero time) e a string original.
func normalizeSaleDate(raw string) (time.Time, string) {
	var day, month, year int

	switch {
	case strings.Contains(raw, "/"):
		parts := strings.Split(raw, "/")
		if len(parts) != 3 {
			return time.Time{}, raw
		}
		day, month, year = atoi(parts[0]), atoi(parts[1]), atoi(parts[2])
	case strings.Contains(raw, "-"):
		parts := strings.Split(raw, "-")
		if len(parts) != 3 {
			return time.Time{}, raw
		}
		if len(parts[0]) == 4 {
			year, month, day = atoi(parts[0]), atoi(parts[1]), atoi(parts[2])
		} else {
			day, month, year = atoi(parts[0]), atoi(parts[1]), atoi(parts[2])
		}
	default:
		return time.Time{}, raw
	}

	if year == 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, raw
	}

	when := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return when, fmt.Sprintf("%02d/%02d/%d", day, month, year)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// SummarizeTimeline soma receita e ingressos da linha do tempo.
func SummarizeTimeline(points []domain.TicketSaleTimelinePoint) TimelineTotals {
	totals := TimelineTotals{}
	for _, point := range points {
		totals.TotalRevenue += point.Amount
		totals.TotalTickets += point.Quantity
	}

	if totals.TotalTickets > 0 {
		totals.AverageTicket = totals.TotalRevenue / totals.TotalTickets
	}

	return totals
}

// AgentShare é um comissário ranqueado com sua fatia do total de ingressos.
type AgentShare struct {
	Passkey     string  `json:"passkey"`
	TicketCount float64 `json:"ingressos"`
	Revenue     float64 `json:"receita"`
	Percentage  float64 `json:"porcentagem"`
}

// TopAgents ranqueia comissários por receita, decrescente, truncado em n. A
// porcentagem é a fatia do total de ingressos do evento (0 se o total é 0).
func TopAgents(agents []domain.AgentPerformanceRecord, totalTickets float64, n int) []AgentShare {
	shares := make([]AgentShare, 0, len(agents))
	for _, agent := range agents {
		share := AgentShare{
			Passkey:     agent.Passkey,
			TicketCount: agent.TicketCount,
			Revenue:     agent.Revenue,
		}
		if totalTickets > 0 {
			share.Percentage = agent.TicketCount / totalTickets * 100
		}
		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Revenue > shares[j].Revenue
	})

	if n >= 0 && len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// PaymentShare é um meio de pagamento agregado com sua fatia de ingressos.
type PaymentShare struct {
	Method      string  `json:"tipoPagamento"`
	TicketCount float64 `json:"ingressos"`
	Revenue     float64 `json:"receita"`
	Percentage  float64 `json:"porcentagem"`
}

// PaymentRollup agrupa por meio de pagamento (o rótulo já chega canonizado
// do normalizador), soma ingressos e receita e ordena por receita
// decrescente.
func PaymentRollup(payments []domain.PaymentMethodBreakdown, totalTickets float64) []PaymentShare {
	tickets := newGroupSum()
	revenue := newGroupSum()
	for _, payment := range payments {
		tickets.add(payment.Method, payment.TicketCount)
		revenue.add(payment.Method, payment.Revenue)
	}

	shares := make([]PaymentShare, 0, len(tickets.order))
	for _, method := range tickets.order {
		share := PaymentShare{
			Method:      method,
			TicketCount: tickets.totals[method],
			Revenue:     revenue.totals[method],
		}
		if totalTickets > 0 {
			share.Percentage = share.TicketCount / totalTickets * 100
		}
		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Revenue > shares[j].Revenue
	})

	return shares
}
