package ledger

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// Trend gera um ponto por registro, do mais antigo para o mais recente
func Trend(records []domain.Record) []domain.TrendPoint {
	ordered := Sort(records, domain.SortByDate, domain.Asc)

	points := make([]domain.TrendPoint, 0, len(ordered))
	for _, r := range ordered {
		points = append(points, domain.TrendPoint{
			Date:          r.Date,
			PurchasePrice: r.PurchasePrice,
			SellPrice:     r.SellPrice,
			ProfitPerUnit: r.ProfitPerUnit(),
		})
	}

	return points
}

// AvailableYears lista os anos presentes nos registros, o mais recente primeiro
func AvailableYears(records []domain.Record, loc *time.Location) []int {
	if loc == nil {
		loc = time.UTC
	}

	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, r := range records {
		if !r.Usable() {
			continue
		}
		y := r.Date.In(loc).Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
