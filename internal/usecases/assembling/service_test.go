package assembling

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eventops/event-insights-api/infrastructure/integrator/gsheets/mocks"
	"github.com/eventops/event-insights-api/internal/config"
	"github.com/eventops/event-insights-api/internal/normalizer"
)

func testConfig() *config.Config {
	return &config.Config{
		Sheets: config.Sheets{
			FetchTimeoutSecs: 5,
			GIDZig:           1,
			GIDFinance:       2,
			GIDTimeline:      3,
			GIDComissarios:   4,
			GIDGenero:        5,
			GIDIdade:         6,
			GIDPagamento:     7,
			GIDEstado:        8,
			GIDCidade:        9,
		},
	}
}

func TestAssemble(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := mocks.NewMockSheetsIntegrator(ctrl)

	zigRows := []normalizer.RawRow{
		{
			"Data do Evento": "05/01/2026",
			"Evento":         "Summer Edition",
			"Cidade":         "Florianópolis",
			"Estado":         "SC",
			"Quantidade":     "2",
			"Valor total":    "R$ 100,00",
		},
	}
	timelineRows := []normalizer.RawRow{
		{
			"Data da Venda":  "2026-01-02",
			"Data do Evento": "05/01/2026",
			"Evento":         "Summer Edition",
			"Cidade":         "Erechim",
			"Estado":         "RS",
			"Quantidade":     "10",
			"Valor":          "R$ 900,00",
		},
	}

	mockSheets.EXPECT().FetchRows(gomock.Any(), int64(1)).Return(zigRows, nil)
	mockSheets.EXPECT().FetchRows(gomock.Any(), int64(3)).Return(timelineRows, nil)
	for _, gid := range []int64{2, 4, 5, 6, 7, 8, 9} {
		mockSheets.EXPECT().FetchRows(gomock.Any(), gid).Return(nil, nil)
	}

	service := NewService(testConfig(), mockSheets)

	payload, err := service.Assemble(context.Background())
	require.NoError(t, err)

	require.Len(t, payload.Zig, 1)
	assert.Equal(t, 100.0, payload.Zig[0].Total)
	require.Len(t, payload.Timeline, 1)
	assert.Equal(t, "2026-01-02", payload.Timeline[0].SaleDate)

	// Filtros disponíveis unem zig e linha do tempo, sem vazios.
	assert.Equal(t, []string{"05/01/2026"}, payload.AvailableFilters.Dates)
	assert.Equal(t, []string{"Florianópolis", "Erechim"}, payload.AvailableFilters.Cities)
	assert.Equal(t, []string{"SC", "RS"}, payload.AvailableFilters.States)
}

func TestAssemble_AnyFailureFailsTheWholePayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := mocks.NewMockSheetsIntegrator(ctrl)

	// Um único dataset indisponível derruba a montagem; os outros fetches
	// podem ou não completar antes do cancelamento.
	mockSheets.EXPECT().
		FetchRows(gomock.Any(), int64(2)).
		Return(nil, errors.New("aba não encontrada"))
	mockSheets.EXPECT().
		FetchRows(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	service := NewService(testConfig(), mockSheets)

	payload, err := service.Assemble(context.Background())
	assert.Error(t, err)
	// Nunca há payload parcial observável.
	assert.Nil(t, payload)
}
