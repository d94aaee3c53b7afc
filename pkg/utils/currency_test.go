package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "formato brasileiro completo", input: "R$ 1.234,56", expected: 1234.56},
		{name: "vírgula decimal sem símbolo", input: "1234,56", expected: 1234.56},
		{name: "ponto decimal sem símbolo", input: "1234.56", expected: 1234.56},
		{name: "símbolo sem espaço", input: "R$1.500,00", expected: 1500},
		{name: "milhar duplo brasileiro", input: "1.234.567,89", expected: 1234567.89},
		{name: "vazio", input: "", expected: 0},
		{name: "só espaços", input: "   ", expected: 0},
		{name: "texto", input: "abc", expected: 0},
		{name: "símbolo sozinho", input: "R$", expected: 0},
		{name: "inteiro puro", input: "42", expected: 42},
		{name: "negativo", input: "-10,50", expected: -10.5},

		// Caso ambíguo documentado: último segmento com exatamente 3 dígitos
		// após o único ponto conta como milhar.
		{name: "ponto com 3 dígitos finais é milhar", input: "136.590", expected: 136590},
		{name: "ponto com 2 dígitos finais é decimal", input: "44735.25", expected: 44735.25},
		{name: "milhar americano múltiplo", input: "1.234.567", expected: 1234567},
		{name: "decimal com 1 dígito", input: "10.5", expected: 10.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCurrency(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 10.0, ParseNumber("10"))
	assert.Equal(t, 10.5, ParseNumber("10,5"))
	assert.Equal(t, 10.5, ParseNumber(" 10.5 "))
	assert.Equal(t, 0.0, ParseNumber(""))
	assert.Equal(t, 0.0, ParseNumber("n/a"))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.566))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
