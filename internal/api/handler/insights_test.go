package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventops/event-insights-api/internal/api/handler/router"
	"github.com/eventops/event-insights-api/internal/domain"
	"github.com/eventops/event-insights-api/pkg/apiErrors"
)

type stubAssembler struct {
	payload *domain.Payload
	err     error
}

func (s *stubAssembler) Assemble(context.Context) (*domain.Payload, error) {
	return s.payload, s.err
}

func testRouter(assembler *stubAssembler) http.Handler {
	return router.New(
		router.WithRoutes(Datasets(assembler)...),
		router.WithRoutes(Insights(assembler)...),
	)
}

func TestGetSalesInsights(t *testing.T) {
	assembler := &stubAssembler{payload: &domain.Payload{
		Zig: []domain.SalesLineItem{
			{EventDate: "05/01/2026", City: "Recife", State: "PE", Type: "Bebida", Name: "Chopp", Category: "Cerveja", Quantity: 10, Total: 120},
			{EventDate: "10/02/2026", City: "Olinda", State: "PE", Type: "Comida", Name: "Hambúrguer", Category: "Lanches", Quantity: 4, Total: 100},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/sales?cidade=Recife", nil)
	rec := httptest.NewRecorder()
	testRouter(assembler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body SalesInsights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(10), body.Summary.TotalItems)
	assert.Equal(t, float64(120), body.Summary.TotalRevenue)
	require.Len(t, body.TopDrinks, 1)
	assert.Equal(t, "Chopp", body.TopDrinks[0].Name)
	assert.Empty(t, body.TopFood)
}

func TestAssemblyFailureIsBadGateway(t *testing.T) {
	assembler := &stubAssembler{err: errors.New("aba não encontrada")}

	req := httptest.NewRequest(http.MethodGet, "/v1/datasets", nil)
	rec := httptest.NewRecorder()
	testRouter(assembler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrSpreadsheetData, body.Code)
}

func TestFinanceCategoryDetailsRejectsUnknownKind(t *testing.T) {
	assembler := &stubAssembler{payload: &domain.Payload{}}

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/finance/categories/lucro/Bar", nil)
	rec := httptest.NewRecorder()
	testRouter(assembler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDemographicInsightsIgnoresFilter(t *testing.T) {
	assembler := &stubAssembler{payload: &domain.Payload{
		Gender: []domain.DemographicBreakdown{
			{Category: "Feminino", Percentage: 60, City: "Recife"},
			{Category: "Feminino", Percentage: 40, City: "Olinda"},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/demographics?cidade=Recife", nil)
	rec := httptest.NewRecorder()
	testRouter(assembler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body DemographicInsights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Gender, 1)
	// O recorte demográfico é global: os dois eventos entram na média.
	assert.Equal(t, float64(50), body.Gender[0].Percentage)
}
