package handler

import (
	"net/http"

	"github.com/eventops/event-insights-api/internal/usecases/assembling"
	"github.com/eventops/event-insights-api/pkg/apiErrors"
	"github.com/eventops/event-insights-api/pkg/log"
)

// GetDatasets monta e devolve o payload completo: os nove datasets
// normalizados mais os valores de filtro disponíveis. É a rota que o
// dashboard usa para hidratar a tela inteira de uma vez.
func GetDatasets(service assembling.Assembler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		payload, err := service.Assemble(r.Context())
		if err != nil {
			logger.WithError(err).Error("datasets: falha ao montar o payload")
			apiErrors.WriteError(w, apiErrors.ErrSpreadsheetData, "Dados da planilha indisponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.WithError(err).Error("datasets: falha ao serializar o payload")
		}
	})
}
