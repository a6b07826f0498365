package storeclient

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExport_ExtendedJSON(t *testing.T) {
	// saída canônica do mongoexport, um documento por linha
	data := []byte(`{"_id":{"$oid":"65a1b2c3d4e5f60718293a4b"},"วันที่":{"$date":"2024-01-05T00:00:00Z"},"ราคาซื้อมะพร้าว":{"$numberInt":"10"},"จำนวนขายมะพร้าว":{"$numberInt":"100"},"ราคาขายมะพร้าว":{"$numberDouble":"15.5"}}
{"_id":{"$oid":"65a1b2c3d4e5f60718293a4c"},"วันที่":{"$date":{"$numberLong":"1706745600000"}},"ราคาซื้อมะพร้าว":11,"จำนวนขายมะพร้าว":{"$numberLong":"80"},"ราคาขายมะพร้าว":14}
`)

	records, err := DecodeExport(data, time.UTC)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.False(t, first.Malformed)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", first.ID)
	assert.Equal(t, "2024-01-05", first.Date.Format(time.DateOnly))
	assert.Equal(t, int64(100), first.SoldQuantity)
	assert.True(t, first.SellPrice.Equal(decimal.RequireFromString("15.5")))

	second := records[1]
	assert.False(t, second.Malformed)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4c", second.ID)
	assert.Equal(t, "2024-02-01", second.Date.Format(time.DateOnly))
	assert.Equal(t, int64(80), second.SoldQuantity)
}

func TestDecodeExport_JSONArray(t *testing.T) {
	data := []byte(`[{"_id":{"$oid":"65a1"},"date":{"$date":1704412800000},"purchasePrice":1,"soldQuantity":2,"sellPrice":3}]`)

	records, err := DecodeExport(data, time.UTC)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Malformed)
	assert.Equal(t, "65a1", records[0].ID)
	assert.Equal(t, "2024-01-05", records[0].Date.Format(time.DateOnly))
}

func TestDecodeExport_InvalidDocument(t *testing.T) {
	_, err := DecodeExport([]byte(`{"_id":{"$oid":"x"}`), time.UTC)
	assert.Error(t, err)
}

func TestExtendedValue_LeavesPlainObjectsAlone(t *testing.T) {
	raw := []byte(`{"a":1,"b":2}`)
	assert.Equal(t, string(raw), string(extendedValue(raw)))

	// objeto sem tipo estendido continua inválido para data
	_, ok := parseDate(extendedValue([]byte(`{"when":"2024-01-05"}`)), time.UTC)
	assert.False(t, ok)
}
