// Package ledger contém os motores puros de filtro, agregação, ordenação,
// paginação e somatório usados pela tabela e pelo dashboard.
// Nenhuma função deste pacote altera o slice recebido.
package ledger

import (
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// Filter reduz os registros aos que caem na janela de tempo de ref.
// FilterAll (ou um modo desconhecido) devolve todos os registros, inclusive os malformados.
// Os demais modos descartam registros malformados e preservam a ordem de entrada.
func Filter(records []domain.Record, mode domain.FilterMode, ref time.Time) []domain.Record {
	out := make([]domain.Record, 0, len(records))

	switch mode {
	case domain.FilterDay, domain.FilterMonth, domain.FilterYear:
	default:
		return append(out, records...)
	}

	for _, r := range records {
		if !r.Usable() {
			continue
		}
		if sameWindow(r.Date, ref, mode) {
			out = append(out, r)
		}
	}

	return out
}

// sameWindow compara os campos de calendário no fuso horário da referência
func sameWindow(date, ref time.Time, mode domain.FilterMode) bool {
	d := date.In(ref.Location())

	switch mode {
	case domain.FilterDay:
		return d.Year() == ref.Year() && d.Month() == ref.Month() && d.Day() == ref.Day()
	case domain.FilterMonth:
		return d.Year() == ref.Year() && d.Month() == ref.Month()
	case domain.FilterYear:
		return d.Year() == ref.Year()
	}

	return true
}

// FilterByPeriod aplica os seletores independentes de ano e mês do dashboard.
// Mês sem ano seleciona aquele mês em todos os anos. Sem nenhum seletor, devolve tudo.
func FilterByPeriod(records []domain.Record, year, month *int, loc *time.Location) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	if year == nil && month == nil {
		return append(out, records...)
	}

	if loc == nil {
		loc = time.UTC
	}

	for _, r := range records {
		if !r.Usable() {
			continue
		}

		d := r.Date.In(loc)
		if year != nil && d.Year() != *year {
			continue
		}
		if month != nil && int(d.Month()) != *month {
			continue
		}

		out = append(out, r)
	}

	return out
}
