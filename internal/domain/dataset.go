// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// LedgerKind classifica uma linha do razão financeiro. O valor da linha é
// sempre positivo; é o kind que decide o sinal no resultado líquido.
type LedgerKind string

const (
	LedgerCost    LedgerKind = "CUSTO"
	LedgerRevenue LedgerKind = "RECEITA"
)

// CourtesyDescription é a descrição literal usada na planilha para ingressos
// cortesia. Linhas com essa descrição são subtraídas do total de ingressos
// para obter os ingressos pagos.
const CourtesyDescription = "CORTESIAS"

// NoCityLabel é o marcador usado quando a planilha não informa a cidade de
// uma linha de venda por cidade.
const NoCityLabel = "Sem Cidade"

// SalesLineItem é uma linha normalizada do dataset de vendas do ponto de
// venda (bar). ValorTotal vem da planilha e não é recalculado a partir de
// quantidade x valor unitário: descontos fazem os dois divergirem.
type SalesLineItem struct {
	EventDate string  `json:"dataEvento"`
	Event     string  `json:"evento"`
	City      string  `json:"cidade"`
	State     string  `json:"estado"`
	Type      string  `json:"tipo"`
	Name      string  `json:"nome"`
	Category  string  `json:"categoria"`
	Quantity  float64 `json:"quantidade"`
	UnitPrice float64 `json:"valorUnitario"`
	Total     float64 `json:"valorTotal"`
}

// LedgerEntry é uma linha normalizada do razão financeiro.
type LedgerEntry struct {
	EventDate   string     `json:"dataEvento"`
	Event       string     `json:"evento"`
	City        string     `json:"cidade"`
	State       string     `json:"estado"`
	Description string     `json:"descricao"`
	Amount      float64    `json:"valor"`
	Category    string     `json:"categoria"`
	Kind        LedgerKind `json:"tipo"`
	TicketCount float64    `json:"qtdIngressos"`
}

// TicketSaleTimelinePoint é um ponto da linha do tempo de vendas de
// ingressos. Datas repetidas são legítimas e somadas na agregação.
type TicketSaleTimelinePoint struct {
	SaleDate  string  `json:"dataVenda"`
	EventDate string  `json:"dataEvento"`
	Event     string  `json:"evento"`
	City      string  `json:"cidade"`
	State     string  `json:"estado"`
	Quantity  float64 `json:"quantidade"`
	Amount    float64 `json:"valor"`
}

// AgentPerformanceRecord é o desempenho de um comissário. O dataset é
// escopado por evento na própria planilha, então não carrega descritores.
type AgentPerformanceRecord struct {
	Passkey     string  `json:"passkey"`
	TicketCount float64 `json:"ingressos"`
	Revenue     float64 `json:"receita"`
}

// DemographicBreakdown é uma fatia demográfica (gênero ou faixa etária) de
// um evento. Porcentagem já vem normalizada em 0-100; a soma por evento
// deveria dar ~100 mas nunca é validada.
type DemographicBreakdown struct {
	Category   string  `json:"categoria"`
	Percentage float64 `json:"porcentagem"`
	EventDate  string  `json:"dataEvento"`
	Event      string  `json:"evento"`
	City       string  `json:"cidade"`
	State      string  `json:"estado"`
}

// PaymentMethodBreakdown agrega ingressos e receita por meio de pagamento.
// Method já chega canonizado pelo normalizador (grafias de cartão de
// crédito/débito colapsadas em um rótulo único).
type PaymentMethodBreakdown struct {
	Method      string  `json:"tipoPagamento"`
	Installment string  `json:"parcelamento"`
	TicketCount float64 `json:"ingressos"`
	Revenue     float64 `json:"receita"`
	EventDate   string  `json:"dataEvento"`
	Event       string  `json:"evento"`
	City        string  `json:"cidade"`
	State       string  `json:"estado"`
}

// StateBreakdown agrega ingressos e receita por estado.
type StateBreakdown struct {
	State       string  `json:"estado"`
	TicketCount float64 `json:"ingressos"`
	Revenue     float64 `json:"receita"`
	EventDate   string  `json:"dataEvento"`
	Event       string  `json:"evento"`
}

// CityBreakdown agrega ingressos e receita por cidade. Cidade em branco vira
// o marcador NoCityLabel no normalizador; na agregação o marcador recebe o
// sufixo do evento para não colidir entre eventos distintos.
type CityBreakdown struct {
	City        string  `json:"cidade"`
	TicketCount float64 `json:"ingressos"`
	Revenue     float64 `json:"receita"`
	EventDate   string  `json:"dataEvento"`
	Event       string  `json:"evento"`
}

// AvailableFilters são os valores distintos observáveis para cada filtro,
// unindo os dois datasets que carregam descritores completos de evento.
type AvailableFilters struct {
	Dates  []string `json:"datas"`
	Cities []string `json:"cidades"`
	States []string `json:"estados"`
}

// Payload é o resultado de uma montagem completa: todos os datasets
// normalizados de uma vez. Nunca é parcial — ou todos os fetches deram
// certo, ou a montagem inteira falhou.
type Payload struct {
	Zig              []SalesLineItem           `json:"zig"`
	Finance          []LedgerEntry             `json:"finance"`
	Timeline         []TicketSaleTimelinePoint `json:"ingresseTimeline"`
	Agents           []AgentPerformanceRecord  `json:"ingresseComissarios"`
	Gender           []DemographicBreakdown    `json:"ingresseGenero"`
	Age              []DemographicBreakdown    `json:"ingresseIdade"`
	Payment          []PaymentMethodBreakdown  `json:"ingressePagamento"`
	States           []StateBreakdown          `json:"ingresseEstado"`
	Cities           []CityBreakdown           `json:"ingresseCidade"`
	AvailableFilters AvailableFilters          `json:"availableFilters"`
}
