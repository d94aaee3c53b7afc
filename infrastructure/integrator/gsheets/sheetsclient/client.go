package sheetsclient

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/eventops/event-insights-api/internal/config"
)

// Client lê a grade de valores de uma aba da planilha identificada por GID.
type Client interface {
	GetGrid(ctx context.Context, gid int64) ([][]string, error)
}

type GoogleSheetsClient struct {
	svc           *gsheet.Service
	spreadsheetID string
}

// NewClient cria o cliente da API do Google Sheets com credenciais de
// service account, lidas uma vez por processo: JSON inline via ambiente ou
// arquivo local de credenciais.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	credentials, err := loadCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(gsheet.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço do Google Sheets")
	}

	return &GoogleSheetsClient{
		svc:           svc,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
	}, nil
}

func loadCredentials(cfg *config.Config) ([]byte, error) {
	if cfg.Sheets.ServiceAccountJSON != "" {
		return []byte(cfg.Sheets.ServiceAccountJSON), nil
	}

	if cfg.Sheets.ServiceAccountFile != "" {
		data, err := os.ReadFile(cfg.Sheets.ServiceAccountFile)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler o arquivo de credenciais")
		}
		return data, nil
	}

	return nil, errors.New("credenciais ausentes: defina GOOGLE_SERVICE_ACCOUNT_JSON ou GOOGLE_SERVICE_ACCOUNT_FILE")
}

// GetGrid carrega os metadados da planilha, resolve o título da aba pelo GID
// e devolve todos os valores da aba como strings.
func (c *GoogleSheetsClient) GetGrid(ctx context.Context, gid int64) ([][]string, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.sheetId", "sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar metadados da planilha")
	}

	title := ""
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.SheetId == gid {
			title = sheet.Properties.Title
			break
		}
	}
	if title == "" {
		return nil, errors.Errorf("aba com GID %d não encontrada", gid)
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, fmt.Sprintf("'%s'", title)).
		Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler valores da aba %q", title)
	}

	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		grid = append(grid, cells)
	}

	return grid, nil
}
