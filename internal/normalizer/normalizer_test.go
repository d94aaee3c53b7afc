package normalizer

import (
	"testing"

	"github.com/eventops/event-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewSalesLineItem(t *testing.T) {
	raw := RawRow{
		"Data do Evento": "05/01/2026",
		"Evento":         "Summer Edition",
		"Cidade":         "Florianópolis",
		"Estado":         "SC",
		"Tipo":           "Bebida",
		"Nome":           "Gin Tônica",
		"Categoria":      "Drinks",
		"Quantidade":     "12",
		"Valor unitário": "R$ 25,00",
		"Valor total":    "R$ 270,00",
	}

	item := NewSalesLineItem(raw)

	assert.Equal(t, "05/01/2026", item.EventDate)
	assert.Equal(t, "Summer Edition", item.Event)
	assert.Equal(t, "Florianópolis", item.City)
	assert.Equal(t, "SC", item.State)
	assert.Equal(t, "Bebida", item.Type)
	assert.Equal(t, 12.0, item.Quantity)
	assert.Equal(t, 25.0, item.UnitPrice)
	// Valor total vem da planilha e pode divergir de quantidade x unitário
	// (descontos); nunca é recalculado.
	assert.Equal(t, 270.0, item.Total)
}

func TestNewSalesLineItem_MissingColumnsUseDefaults(t *testing.T) {
	item := NewSalesLineItem(RawRow{"Evento": "Solo"})

	assert.Equal(t, "Solo", item.Event)
	assert.Equal(t, "", item.City)
	assert.Equal(t, 0.0, item.Quantity)
	assert.Equal(t, 0.0, item.Total)
}

func TestNewLedgerEntry(t *testing.T) {
	entry := NewLedgerEntry(RawRow{
		"Data do Evento": "05/01/2026",
		"Evento":         "Summer Edition",
		"Descrição":      "CORTESIAS",
		"Valor":          "1.500,00",
		"Categoria":      "Ingressos",
		"Tipo":           "RECEITA",
		"QTD Ingressos":  "30",
	})

	assert.Equal(t, domain.LedgerRevenue, entry.Kind)
	assert.Equal(t, 1500.0, entry.Amount)
	assert.Equal(t, 30.0, entry.TicketCount)
	assert.Equal(t, domain.CourtesyDescription, entry.Description)
}

func TestNewLedgerEntry_MalformedAmountDegradesToZero(t *testing.T) {
	entry := NewLedgerEntry(RawRow{"Valor": "pendente", "Tipo": "CUSTO"})

	assert.Equal(t, 0.0, entry.Amount)
	assert.Equal(t, domain.LedgerCost, entry.Kind)
}

func TestCanonicalPaymentLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Cartão De Crédito Visa", CreditCardLabel},
		{"cartão de crédito master", CreditCardLabel},
		{"CARTÃO DE DÉBITO ELO", DebitCardLabel},
		{"Pix", "Pix"},
		{"Boleto", "Boleto"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CanonicalPaymentLabel(tt.input), tt.input)
	}
}

func TestNewPaymentBreakdown_CanonicalizesMethod(t *testing.T) {
	b := NewPaymentBreakdown(RawRow{
		"Tipo de Pagamento": "Cartão de Crédito Mastercard",
		"Parcelamento":      "3x",
		"Ingressos":         "10",
		"Receita":           "R$ 900,00",
	})

	assert.Equal(t, CreditCardLabel, b.Method)
	assert.Equal(t, "3x", b.Installment)
	assert.Equal(t, 900.0, b.Revenue)
}

func TestNewCityBreakdown_BlankCityGetsMarker(t *testing.T) {
	b := NewCityBreakdown(RawRow{
		"Cidade":    "",
		"Ingressos": "5",
		"Evento":    "Summer Edition",
	})

	assert.Equal(t, domain.NoCityLabel, b.City)
	assert.Equal(t, "Summer Edition", b.Event)
}

func TestSchemaApply_AlternativeLabels(t *testing.T) {
	// "Valor Unitário" (maiúsculo) também alimenta o campo canônico.
	item := NewSalesLineItem(RawRow{"Valor Unitário": "10,00"})
	assert.Equal(t, 10.0, item.UnitPrice)

	// "UF" é rótulo alternativo de "Estado".
	item = NewSalesLineItem(RawRow{"UF": "RS"})
	assert.Equal(t, "RS", item.State)
}
