// Package normalizer converte linhas cruas de planilha (mapas rotulados pelo
// cabeçalho) em registros tipados do domínio. Cada dataset tem um Schema
// declarando, por campo canônico, os rótulos de coluna aceitos na origem e o
// tipo do valor; o motor de lookup/parse/default é único para todos.
package normalizer

import (
	"strings"

	"github.com/eventops/event-insights-api/pkg/utils"
)

// RawRow é uma linha crua da planilha, chaveada pelo rótulo de coluna
// exatamente como escrito na origem (inclusive acentos).
type RawRow map[string]string

// Kind indica como o valor cru de um campo deve ser interpretado.
type Kind int

const (
	// Text mantém a string como veio, com espaços aparados.
	Text Kind = iota
	// Number passa por utils.ParseNumber (quantidades, contagens).
	Number
	// Currency passa pela heurística de utils.ParseCurrency.
	Currency
)

// Field é um campo canônico de um dataset e os rótulos de coluna que o
// alimentam, na ordem de preferência.
type Field struct {
	Name   string
	Labels []string
	Kind   Kind
}

// Schema descreve a forma fixa de um dataset.
type Schema struct {
	Dataset string
	Fields  []Field
}

// Record é a visão canônica de uma linha após aplicar um Schema. Campos
// ausentes ou malformados já estão com o default do tipo ("" ou 0).
type Record struct {
	text    map[string]string
	numbers map[string]float64
}

// Apply normaliza uma linha crua. Função pura: nunca falha, nunca altera a
// entrada.
func (s Schema) Apply(raw RawRow) Record {
	rec := Record{
		text:    make(map[string]string),
		numbers: make(map[string]float64),
	}

	for _, field := range s.Fields {
		value, ok := lookup(raw, field.Labels)

		switch field.Kind {
		case Text:
			if !ok {
				rec.text[field.Name] = ""
				continue
			}
			rec.text[field.Name] = strings.TrimSpace(value)
		case Number:
			rec.numbers[field.Name] = utils.ParseNumber(value)
		case Currency:
			rec.numbers[field.Name] = utils.ParseCurrency(value)
		}
	}

	return rec
}

func lookup(raw RawRow, labels []string) (string, bool) {
	for _, label := range labels {
		if value, ok := raw[label]; ok {
			return value, true
		}
	}
	return "", false
}

// Text devolve um campo textual canônico; "" se o schema não o declarou.
func (r Record) Text(field string) string {
	return r.text[field]
}

// Number devolve um campo numérico canônico; 0 se o schema não o declarou.
func (r Record) Number(field string) float64 {
	return r.numbers[field]
}
