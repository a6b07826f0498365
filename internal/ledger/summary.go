package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

var zero = decimal.Zero

// Summarize soma receita, custo, lucro e quantidade dos registros já filtrados.
// Entrada vazia resulta em totais zerados.
func Summarize(records []domain.Record) domain.Summary {
	summary := domain.Summary{
		TotalRevenue: zero,
		TotalCost:    zero,
		TotalProfit:  zero,
	}

	for _, r := range records {
		if !r.Usable() {
			continue
		}

		cost := r.TotalCost()
		revenue := r.TotalRevenue()

		summary.TotalRevenue = summary.TotalRevenue.Add(revenue)
		summary.TotalCost = summary.TotalCost.Add(cost)
		summary.TotalProfit = summary.TotalProfit.Add(revenue.Sub(cost))
		summary.TotalQty += r.SoldQuantity
	}

	return summary
}
