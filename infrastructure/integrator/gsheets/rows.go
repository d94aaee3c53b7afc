package gsheets

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/eventops/event-insights-api/internal/normalizer"
)

// ErrDuplicateHeader sinaliza que a linha de cabeçalho tem rótulos repetidos
// e a extração primária perderia dados. Erro tipado de propósito: o fallback
// é acionado por identidade, nunca por inspeção da mensagem.
var ErrDuplicateHeader = errors.New("cabeçalho da planilha contém rótulos duplicados")

// RowsFromGrid é o caminho primário: cabeçalho na linha 0, cada linha
// seguinte vira um mapa rótulo→valor. Linhas totalmente vazias são puladas.
func RowsFromGrid(grid [][]string) ([]normalizer.RawRow, error) {
	if len(grid) == 0 {
		return nil, nil
	}

	headers := make([]string, len(grid[0]))
	seen := make(map[string]bool, len(grid[0]))
	for i, cell := range grid[0] {
		header := strings.TrimSpace(cell)
		if header == "" {
			continue
		}
		if seen[header] {
			return nil, ErrDuplicateHeader
		}
		seen[header] = true
		headers[i] = header
	}

	var rows []normalizer.RawRow
	for _, cells := range grid[1:] {
		if isEmptyRow(cells) {
			continue
		}

		row := make(normalizer.RawRow, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(cells) {
				continue
			}
			row[header] = cells[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ScanCells é o fallback para cabeçalhos duplicados. A lista de cabeçalhos
// vai da coluna 0 até a primeira célula de cabeçalho vazia. Dentro de uma
// linha, a segunda ocorrência de um mesmo cabeçalho é guardada sob
// "<cabeçalho>_<índiceDaColuna>" em vez de sobrescrever a primeira. A
// varredura para na primeira linha inteiramente vazia nas colunas
// reconhecidas, que não entra no resultado.
func ScanCells(grid [][]string) []normalizer.RawRow {
	if len(grid) == 0 {
		return nil
	}

	var headers []string
	for _, cell := range grid[0] {
		header := strings.TrimSpace(cell)
		if header == "" {
			break
		}
		headers = append(headers, header)
	}

	var rows []normalizer.RawRow
	for _, cells := range grid[1:] {
		if isEmptyAcross(cells, len(headers)) {
			break
		}

		row := make(normalizer.RawRow, len(headers))
		seen := make(map[string]bool, len(headers))
		for i, header := range headers {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}

			key := header
			if seen[header] {
				key = fmt.Sprintf("%s_%d", header, i)
			}
			seen[header] = true
			row[key] = value
		}
		rows = append(rows, row)
	}

	return rows
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func isEmptyAcross(cells []string, columns int) bool {
	for i := 0; i < columns && i < len(cells); i++ {
		if strings.TrimSpace(cells[i]) != "" {
			return false
		}
	}
	return true
}
