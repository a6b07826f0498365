package ledger

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

type monthKey struct {
	year  int
	month time.Month
}

// AggregateByMonth agrupa os registros por mês do calendário.
// Os totais são acumulados registro a registro e os buckets saem em ordem
// cronológica, independente da ordem de entrada. Meses sem registros não aparecem.
func AggregateByMonth(records []domain.Record) []domain.MonthlyBucket {
	buckets := make([]domain.MonthlyBucket, 0)
	index := make(map[monthKey]int)

	for _, r := range records {
		if !r.Usable() {
			continue
		}

		key := monthKey{year: r.Date.Year(), month: r.Date.Month()}
		i, ok := index[key]
		if !ok {
			buckets = append(buckets, domain.MonthlyBucket{
				Year:         key.year,
				Month:        int(key.month),
				Start:        time.Date(key.year, key.month, 1, 0, 0, 0, 0, r.Date.Location()),
				TotalCost:    zero,
				TotalRevenue: zero,
				NetProfit:    zero,
			})
			i = len(buckets) - 1
			index[key] = i
		}

		cost := r.TotalCost()
		revenue := r.TotalRevenue()

		b := &buckets[i]
		b.TotalQty += r.SoldQuantity
		b.TotalCost = b.TotalCost.Add(cost)
		b.TotalRevenue = b.TotalRevenue.Add(revenue)
		b.NetProfit = b.NetProfit.Add(revenue.Sub(cost))
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})

	return buckets
}
