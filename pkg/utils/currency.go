package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseCurrency converte uma string monetária da planilha em float64.
// Aceita símbolo de moeda, separador de milhar e separador decimal tanto na
// convenção brasileira ("R$ 1.234,56") quanto na americana ("1234.56").
// Entrada vazia ou não interpretável vira 0 — o dashboard precisa renderizar
// mesmo com dados sujos.
//
// Heurística de desambiguação (preservar exatamente; os totais históricos do
// dashboard dependem dela):
//  1. remove símbolo de moeda e espaços
//  2. "." e "," juntos => "." é milhar, "," é decimal
//  3. só "," => decimal
//  4. só "." => se houver mais de um segmento e o último tiver exatamente 3
//     dígitos, "." é milhar; senão é decimal
//  5. sem separador => número puro
//
// O caso 4 é inerentemente ambíguo: um decimal verdadeiro com exatamente 3
// casas ("136.590") é indistinguível de um inteiro agrupado por milhar e é
// tratado como milhar. Limitação conhecida, não corrigir.
func ParseCurrency(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	case hasDot:
		parts := strings.Split(s, ".")
		last := parts[len(parts)-1]
		if len(parts) > 1 && len(last) == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}

// ParseNumber converte campos numéricos simples (quantidades, contagens).
// Aceita vírgula decimal; qualquer falha vira 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}

	return value
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
