package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

func TestTrend(t *testing.T) {
	records := []domain.Record{
		record("feb01", day(2024, time.February, 1), "11", 80, "14"),
		record("jan05", day(2024, time.January, 5), "10", 100, "15"),
		{ID: "broken", Malformed: true},
	}

	points := Trend(records)
	require.Len(t, points, 2)

	assert.Equal(t, day(2024, time.January, 5), points[0].Date)
	assertDecimal(t, "5", points[0].ProfitPerUnit)
	assert.Equal(t, day(2024, time.February, 1), points[1].Date)
	assertDecimal(t, "3", points[1].ProfitPerUnit)
	assertDecimal(t, "11", points[1].PurchasePrice)
	assertDecimal(t, "14", points[1].SellPrice)
}

func TestAvailableYears(t *testing.T) {
	records := []domain.Record{
		record("a", day(2022, time.May, 1), "1", 1, "2"),
		record("b", day(2024, time.May, 1), "1", 1, "2"),
		record("c", day(2022, time.June, 1), "1", 1, "2"),
		record("d", day(2023, time.May, 1), "1", 1, "2"),
		{ID: "broken", Malformed: true},
	}

	assert.Equal(t, []int{2024, 2023, 2022}, AvailableYears(records, time.UTC))
	assert.Empty(t, AvailableYears(nil, nil))
}
