package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// SortConfig é a coluna e a direção atualmente selecionadas na tabela
type SortConfig struct {
	Key       domain.SortKey       `json:"key"`
	Direction domain.SortDirection `json:"direction"`
}

// DefaultSortConfig ordena pela data, mais recente primeiro
func DefaultSortConfig() SortConfig {
	return SortConfig{Key: domain.SortByDate, Direction: domain.Desc}
}

// Toggle inverte a direção quando a mesma coluna é escolhida de novo.
// Uma coluna nova sempre começa em ordem decrescente.
func (c SortConfig) Toggle(key domain.SortKey) SortConfig {
	if c.Key != key {
		return SortConfig{Key: key, Direction: domain.Desc}
	}

	if c.Direction == domain.Asc {
		return SortConfig{Key: key, Direction: domain.Desc}
	}
	return SortConfig{Key: key, Direction: domain.Asc}
}

type sortValue func(domain.Record) decimal.Decimal

var sortValues = map[domain.SortKey]sortValue{
	domain.SortByDate: func(r domain.Record) decimal.Decimal {
		return decimal.NewFromInt(r.Date.UnixNano())
	},
	domain.SortByQuantity: func(r domain.Record) decimal.Decimal {
		return decimal.NewFromInt(r.SoldQuantity)
	},
	domain.SortByPurchasePrice: func(r domain.Record) decimal.Decimal { return r.PurchasePrice },
	domain.SortBySellPrice:     func(r domain.Record) decimal.Decimal { return r.SellPrice },
	domain.SortByTotalCost:     domain.Record.TotalCost,
	domain.SortByTotalRevenue:  domain.Record.TotalRevenue,
	domain.SortByProfit:        domain.Record.Profit,
}

// Sort devolve uma cópia ordenada dos registros utilizáveis.
// A ordenação é estável: empates mantêm a ordem relativa de entrada.
// Chave desconhecida não reordena nada. Qualquer direção diferente de asc é tratada como desc.
func Sort(records []domain.Record, key domain.SortKey, direction domain.SortDirection) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if r.Usable() {
			out = append(out, r)
		}
	}

	value, ok := sortValues[key]
	if !ok {
		return out
	}

	keys := make([]decimal.Decimal, len(out))
	for i, r := range out {
		keys[i] = value(r)
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		cmp := keys[idx[a]].Cmp(keys[idx[b]])
		if direction == domain.Asc {
			return cmp < 0
		}
		return cmp > 0
	})

	sorted := make([]domain.Record, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}

	return sorted
}

// ParseSortKey aceita os nomes das colunas e os apelidos antigos do front (qty, buyPrice)
func ParseSortKey(s string) (domain.SortKey, bool) {
	switch strings.TrimSpace(s) {
	case "date":
		return domain.SortByDate, true
	case "quantity", "qty", "soldQuantity":
		return domain.SortByQuantity, true
	case "purchasePrice", "buyPrice":
		return domain.SortByPurchasePrice, true
	case "sellPrice":
		return domain.SortBySellPrice, true
	case "totalCost":
		return domain.SortByTotalCost, true
	case "totalRevenue":
		return domain.SortByTotalRevenue, true
	case "profit":
		return domain.SortByProfit, true
	}
	return "", false
}

func ParseSortDirection(s string) (domain.SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return domain.Asc, true
	case "desc":
		return domain.Desc, true
	}
	return "", false
}

func ParseFilterMode(s string) (domain.FilterMode, bool) {
	switch domain.FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case domain.FilterAll:
		return domain.FilterAll, true
	case domain.FilterDay:
		return domain.FilterDay, true
	case domain.FilterMonth:
		return domain.FilterMonth, true
	case domain.FilterYear:
		return domain.FilterYear, true
	}
	return "", false
}
