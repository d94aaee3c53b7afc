// Package gsheets adapta a planilha do Google em sequências ordenadas de
// linhas cruas chaveadas pelo cabeçalho, prontas para o normalizador.
package gsheets

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/eventops/event-insights-api/infrastructure/integrator/gsheets/sheetsclient"
	"github.com/eventops/event-insights-api/internal/normalizer"
)

// SheetsIntegrator busca as linhas de uma aba identificada pelo GID.
type SheetsIntegrator interface {
	FetchRows(ctx context.Context, gid int64) ([]normalizer.RawRow, error)
}

type SheetsService struct {
	client sheetsclient.Client
}

func New(client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{client: client}
}

// FetchRows lê a aba e converte a grade em linhas rotuladas. O caminho
// primário falha com ErrDuplicateHeader quando o cabeçalho tem rótulos
// repetidos; nesse caso — e só nesse — cai na varredura célula a célula, que
// preserva colunas homônimas sob chaves sintetizadas. Qualquer outra falha
// propaga como "dataset indisponível".
func (s *SheetsService) FetchRows(ctx context.Context, gid int64) ([]normalizer.RawRow, error) {
	grid, err := s.client.GetGrid(ctx, gid)
	if err != nil {
		return nil, err
	}

	rows, err := RowsFromGrid(grid)
	if errors.Is(err, ErrDuplicateHeader) {
		logrus.WithField("gid", gid).Warn("Cabeçalho duplicado; usando varredura célula a célula")
		return ScanCells(grid), nil
	}
	if err != nil {
		return nil, err
	}

	return rows, nil
}
