// Package assembling monta o payload completo do dashboard: busca todos os
// datasets da planilha concorrentemente, normaliza cada um e produz um único
// Payload imutável para a camada de agregação.
package assembling

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/eventops/event-insights-api/infrastructure/integrator/gsheets"
	"github.com/eventops/event-insights-api/internal/config"
	"github.com/eventops/event-insights-api/internal/domain"
	"github.com/eventops/event-insights-api/internal/normalizer"
)

// Assembler produz o payload completo de uma requisição. Tudo-ou-nada: se
// qualquer dataset falhar, a montagem inteira falha — payload parcial nunca
// chega ao consumidor.
type Assembler interface {
	Assemble(ctx context.Context) (*domain.Payload, error)
}

type Service struct {
	cfg    *config.Config
	sheets gsheets.SheetsIntegrator
}

func NewService(cfg *config.Config, sheets gsheets.SheetsIntegrator) Assembler {
	return &Service{
		cfg:    cfg,
		sheets: sheets,
	}
}

// Assemble dispara os nove fetches em paralelo e espera todos terminarem
// (join-all, não first-to-complete). Cada goroutine escreve exclusivamente no
// seu campo do payload, então não há recurso mutável compartilhado.
func (s *Service) Assemble(ctx context.Context) (*domain.Payload, error) {
	payload := &domain.Payload{}
	sheets := s.cfg.Sheets

	g, gctx := errgroup.WithContext(ctx)

	fetch := func(gid int64, assign func([]normalizer.RawRow)) func() error {
		return func() error {
			fctx, cancel := context.WithTimeout(gctx, sheets.FetchTimeout())
			defer cancel()

			rows, err := s.sheets.FetchRows(fctx, gid)
			if err != nil {
				return errors.Wrapf(err, "erro ao buscar dataset (gid %d)", gid)
			}

			assign(rows)
			return nil
		}
	}

	g.Go(fetch(sheets.GIDZig, func(rows []normalizer.RawRow) {
		payload.Zig = mapRows(rows, normalizer.NewSalesLineItem)
	}))
	g.Go(fetch(sheets.GIDFinance, func(rows []normalizer.RawRow) {
		payload.Finance = mapRows(rows, normalizer.NewLedgerEntry)
	}))
	g.Go(fetch(sheets.GIDTimeline, func(rows []normalizer.RawRow) {
		payload.Timeline = mapRows(rows, normalizer.NewTimelinePoint)
	}))
	g.Go(fetch(sheets.GIDComissarios, func(rows []normalizer.RawRow) {
		payload.Agents = mapRows(rows, normalizer.NewAgentRecord)
	}))
	g.Go(fetch(sheets.GIDGenero, func(rows []normalizer.RawRow) {
		payload.Gender = mapRows(rows, normalizer.NewGenderBreakdown)
	}))
	g.Go(fetch(sheets.GIDIdade, func(rows []normalizer.RawRow) {
		payload.Age = mapRows(rows, normalizer.NewAgeBreakdown)
	}))
	g.Go(fetch(sheets.GIDPagamento, func(rows []normalizer.RawRow) {
		payload.Payment = mapRows(rows, normalizer.NewPaymentBreakdown)
	}))
	g.Go(fetch(sheets.GIDEstado, func(rows []normalizer.RawRow) {
		payload.States = mapRows(rows, normalizer.NewStateBreakdown)
	}))
	g.Go(fetch(sheets.GIDCidade, func(rows []normalizer.RawRow) {
		payload.Cities = mapRows(rows, normalizer.NewCityBreakdown)
	}))

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Montagem do payload falhou")
		return nil, err
	}

	payload.AvailableFilters = availableFilters(payload)

	return payload, nil
}

func mapRows[T any](rows []normalizer.RawRow, build func(normalizer.RawRow) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, build(row))
	}
	return out
}

// availableFilters une os valores distintos de data, cidade e estado dos dois
// datasets que carregam descritores completos de evento (zig e a linha do
// tempo), descartando vazios e preservando a ordem de primeira aparição.
func availableFilters(payload *domain.Payload) domain.AvailableFilters {
	dates := newDistinct()
	cities := newDistinct()
	states := newDistinct()

	for _, item := range payload.Zig {
		dates.add(item.EventDate)
		cities.add(item.City)
		states.add(item.State)
	}
	for _, point := range payload.Timeline {
		dates.add(point.EventDate)
		cities.add(point.City)
		states.add(point.State)
	}

	return domain.AvailableFilters{
		Dates:  dates.values,
		Cities: cities.values,
		States: states.values,
	}
}

type distinct struct {
	seen   map[string]bool
	values []string
}

func newDistinct() *distinct {
	return &distinct{seen: make(map[string]bool), values: []string{}}
}

func (d *distinct) add(value string) {
	if value == "" || d.seen[value] {
		return
	}
	d.seen[value] = true
	d.values = append(d.values, value)
}
