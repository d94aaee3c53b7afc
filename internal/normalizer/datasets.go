package normalizer

import (
	"strings"

	"github.com/eventops/event-insights-api/internal/domain"
)

// Rótulos canônicos após canonicalização dos meios de pagamento. A planilha
// traz dezenas de grafias ("Cartão De Crédito Visa", "cartão de crédito
// master", ...) que precisam colapsar numa chave única de agrupamento.
const (
	CreditCardLabel = "Cartão de Crédito"
	DebitCardLabel  = "Cartão de Débito"
)

// Descritores de evento compartilhados pela maioria dos datasets.
var eventFields = []Field{
	{Name: "dataEvento", Labels: []string{"Data do Evento", "Data Evento"}, Kind: Text},
	{Name: "evento", Labels: []string{"Evento"}, Kind: Text},
	{Name: "cidade", Labels: []string{"Cidade"}, Kind: Text},
	{Name: "estado", Labels: []string{"Estado", "UF"}, Kind: Text},
}

var SalesSchema = Schema{
	Dataset: "zig",
	Fields: append([]Field{
		{Name: "tipo", Labels: []string{"Tipo"}, Kind: Text},
		{Name: "nome", Labels: []string{"Nome"}, Kind: Text},
		{Name: "categoria", Labels: []string{"Categoria"}, Kind: Text},
		{Name: "quantidade", Labels: []string{"Quantidade"}, Kind: Number},
		{Name: "valorUnitario", Labels: []string{"Valor unitário", "Valor Unitário"}, Kind: Currency},
		{Name: "valorTotal", Labels: []string{"Valor total", "Valor Total"}, Kind: Currency},
	}, eventFields...),
}

var LedgerSchema = Schema{
	Dataset: "finance",
	Fields: append([]Field{
		{Name: "descricao", Labels: []string{"Descrição", "Descricao"}, Kind: Text},
		{Name: "valor", Labels: []string{"Valor"}, Kind: Currency},
		{Name: "categoria", Labels: []string{"Categoria"}, Kind: Text},
		{Name: "tipo", Labels: []string{"Tipo"}, Kind: Text},
		{Name: "qtdIngressos", Labels: []string{"QTD Ingressos", "Qtd Ingressos"}, Kind: Number},
	}, eventFields...),
}

var TimelineSchema = Schema{
	Dataset: "ingresseTimeline",
	Fields: append([]Field{
		{Name: "dataVenda", Labels: []string{"Data da Venda", "Data Venda"}, Kind: Text},
		{Name: "quantidade", Labels: []string{"Quantidade", "Ingressos"}, Kind: Number},
		{Name: "valor", Labels: []string{"Valor", "Receita"}, Kind: Currency},
	}, eventFields...),
}

var AgentSchema = Schema{
	Dataset: "ingresseComissarios",
	Fields: []Field{
		{Name: "passkey", Labels: []string{"Passkey", "Comissário"}, Kind: Text},
		{Name: "ingressos", Labels: []string{"Ingressos", "Qtd Ingressos"}, Kind: Number},
		{Name: "receita", Labels: []string{"Receita"}, Kind: Currency},
	},
}

var GenderSchema = Schema{
	Dataset: "ingresseGenero",
	Fields: append([]Field{
		{Name: "categoria", Labels: []string{"Gênero", "Genero"}, Kind: Text},
		{Name: "porcentagem", Labels: []string{"Porcentagem", "%"}, Kind: Number},
	}, eventFields...),
}

var AgeSchema = Schema{
	Dataset: "ingresseIdade",
	Fields: append([]Field{
		{Name: "categoria", Labels: []string{"Faixa Etária", "Faixa Etaria"}, Kind: Text},
		{Name: "porcentagem", Labels: []string{"Porcentagem", "%"}, Kind: Number},
	}, eventFields...),
}

var PaymentSchema = Schema{
	Dataset: "ingressePagamento",
	Fields: append([]Field{
		{Name: "tipoPagamento", Labels: []string{"Tipo de Pagamento", "Tipo Pagamento"}, Kind: Text},
		{Name: "parcelamento", Labels: []string{"Parcelamento"}, Kind: Text},
		{Name: "ingressos", Labels: []string{"Ingressos", "Qtd Ingressos"}, Kind: Number},
		{Name: "receita", Labels: []string{"Receita"}, Kind: Currency},
	}, eventFields...),
}

var StateSchema = Schema{
	Dataset: "ingresseEstado",
	Fields: []Field{
		{Name: "estado", Labels: []string{"Estado", "UF"}, Kind: Text},
		{Name: "ingressos", Labels: []string{"Ingressos"}, Kind: Number},
		{Name: "receita", Labels: []string{"Receita"}, Kind: Currency},
		{Name: "dataEvento", Labels: []string{"Data do Evento"}, Kind: Text},
		{Name: "evento", Labels: []string{"Evento"}, Kind: Text},
	},
}

var CitySchema = Schema{
	Dataset: "ingresseCidade",
	Fields: []Field{
		{Name: "cidade", Labels: []string{"Cidade"}, Kind: Text},
		{Name: "ingressos", Labels: []string{"Ingressos"}, Kind: Number},
		{Name: "receita", Labels: []string{"Receita"}, Kind: Currency},
		{Name: "dataEvento", Labels: []string{"Data do Evento"}, Kind: Text},
		{Name: "evento", Labels: []string{"Evento"}, Kind: Text},
	},
}

func NewSalesLineItem(raw RawRow) domain.SalesLineItem {
	rec := SalesSchema.Apply(raw)
	return domain.SalesLineItem{
		EventDate: rec.Text("dataEvento"),
		Event:     rec.Text("evento"),
		City:      rec.Text("cidade"),
		State:     rec.Text("estado"),
		Type:      rec.Text("tipo"),
		Name:      rec.Text("nome"),
		Category:  rec.Text("categoria"),
		Quantity:  rec.Number("quantidade"),
		UnitPrice: rec.Number("valorUnitario"),
		Total:     rec.Number("valorTotal"),
	}
}

func NewLedgerEntry(raw RawRow) domain.LedgerEntry {
	rec := LedgerSchema.Apply(raw)
	return domain.LedgerEntry{
		EventDate:   rec.Text("dataEvento"),
		Event:       rec.Text("evento"),
		City:        rec.Text("cidade"),
		State:       rec.Text("estado"),
		Description: rec.Text("descricao"),
		Amount:      rec.Number("valor"),
		Category:    rec.Text("categoria"),
		Kind:        domain.LedgerKind(rec.Text("tipo")),
		TicketCount: rec.Number("qtdIngressos"),
	}
}

func NewTimelinePoint(raw RawRow) domain.TicketSaleTimelinePoint {
	rec := TimelineSchema.Apply(raw)
	return domain.TicketSaleTimelinePoint{
		SaleDate:  rec.Text("dataVenda"),
		EventDate: rec.Text("dataEvento"),
		Event:     rec.Text("evento"),
		City:      rec.Text("cidade"),
		State:     rec.Text("estado"),
		Quantity:  rec.Number("quantidade"),
		Amount:    rec.Number("valor"),
	}
}

func NewAgentRecord(raw RawRow) domain.AgentPerformanceRecord {
	rec := AgentSchema.Apply(raw)
	return domain.AgentPerformanceRecord{
		Passkey:     rec.Text("passkey"),
		TicketCount: rec.Number("ingressos"),
		Revenue:     rec.Number("receita"),
	}
}

func NewGenderBreakdown(raw RawRow) domain.DemographicBreakdown {
	return newDemographic(GenderSchema, raw)
}

func NewAgeBreakdown(raw RawRow) domain.DemographicBreakdown {
	return newDemographic(AgeSchema, raw)
}

func newDemographic(schema Schema, raw RawRow) domain.DemographicBreakdown {
	rec := schema.Apply(raw)
	return domain.DemographicBreakdown{
		Category:   rec.Text("categoria"),
		Percentage: rec.Number("porcentagem"),
		EventDate:  rec.Text("dataEvento"),
		Event:      rec.Text("evento"),
		City:       rec.Text("cidade"),
		State:      rec.Text("estado"),
	}
}

func NewPaymentBreakdown(raw RawRow) domain.PaymentMethodBreakdown {
	rec := PaymentSchema.Apply(raw)
	return domain.PaymentMethodBreakdown{
		Method:      CanonicalPaymentLabel(rec.Text("tipoPagamento")),
		Installment: rec.Text("parcelamento"),
		TicketCount: rec.Number("ingressos"),
		Revenue:     rec.Number("receita"),
		EventDate:   rec.Text("dataEvento"),
		Event:       rec.Text("evento"),
		City:        rec.Text("cidade"),
		State:       rec.Text("estado"),
	}
}

func NewStateBreakdown(raw RawRow) domain.StateBreakdown {
	rec := StateSchema.Apply(raw)
	return domain.StateBreakdown{
		State:       rec.Text("estado"),
		TicketCount: rec.Number("ingressos"),
		Revenue:     rec.Number("receita"),
		EventDate:   rec.Text("dataEvento"),
		Event:       rec.Text("evento"),
	}
}

func NewCityBreakdown(raw RawRow) domain.CityBreakdown {
	rec := CitySchema.Apply(raw)

	city := rec.Text("cidade")
	if city == "" {
		city = domain.NoCityLabel
	}

	return domain.CityBreakdown{
		City:        city,
		TicketCount: rec.Number("ingressos"),
		Revenue:     rec.Number("receita"),
		EventDate:   rec.Text("dataEvento"),
		Event:       rec.Text("evento"),
	}
}

// CanonicalPaymentLabel colapsa grafias próximas de cartão de crédito e
// débito num rótulo único. A agregação agrupa por esse campo literalmente,
// então a canonicalização precisa acontecer na ingestão.
func CanonicalPaymentLabel(label string) string {
	lower := strings.ToLower(label)
	if strings.Contains(lower, "cartão de crédito") {
		return CreditCardLabel
	}
	if strings.Contains(lower, "cartão de débito") {
		return DebitCardLabel
	}
	return label
}
