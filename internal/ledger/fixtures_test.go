package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(id string, date time.Time, purchase string, qty int64, sell string) domain.Record {
	return domain.Record{
		ID:            id,
		Date:          date,
		PurchasePrice: dec(purchase),
		SoldQuantity:  qty,
		SellPrice:     dec(sell),
	}
}

// scenario é o conjunto de exemplo: dois lançamentos em janeiro e um em fevereiro de 2024
func scenario() []domain.Record {
	return []domain.Record{
		record("jan05", day(2024, time.January, 5), "10", 100, "15"),
		record("jan20", day(2024, time.January, 20), "12", 50, "16"),
		record("feb01", day(2024, time.February, 1), "11", 80, "14"),
	}
}

func ids(records []domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"expected %s, got %s", want, got.String()}, msgAndArgs...)...)
}
