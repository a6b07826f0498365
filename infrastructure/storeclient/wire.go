package storeclient

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// Chaves aceitas por campo: a neutra primeiro, depois a da coleção original
// (nomes de campo em tailandês e _id do Mongo)
var (
	idKeys            = []string{"id", "_id"}
	dateKeys          = []string{"date", "วันที่"}
	purchasePriceKeys = []string{"purchasePrice", "ราคาซื้อมะพร้าว"}
	soldQuantityKeys  = []string{"soldQuantity", "จำนวนขายมะพร้าว"}
	sellPriceKeys     = []string{"sellPrice", "ราคาขายมะพร้าว"}
)

// wireRecord guarda os valores crus para que um campo inválido marque só aquele registro
type wireRecord map[string]jsoniter.RawMessage

// DecodeRecords lê um array JSON de lançamentos no formato da API ou no formato legado
func DecodeRecords(data []byte, loc *time.Location) ([]domain.Record, error) {
	var raw []wireRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return toRecords(raw, loc), nil
}

// DecodeExport lê a saída do mongoexport: um array (--jsonArray) ou um documento por linha,
// em JSON estendido ({"$oid": ...}, {"$date": ...}) ou relaxado
func DecodeExport(data []byte, loc *time.Location) ([]domain.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return DecodeRecords(trimmed, loc)
	}

	var raw []wireRecord
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	for decoder.More() {
		var w wireRecord
		if err := decoder.Decode(&w); err != nil {
			return nil, err
		}
		raw = append(raw, w)
	}
	return toRecords(raw, loc), nil
}

func toRecords(raw []wireRecord, loc *time.Location) []domain.Record {
	records := make([]domain.Record, 0, len(raw))
	for _, w := range raw {
		records = append(records, w.toRecord(loc))
	}
	return records
}

func (w wireRecord) field(keys []string) jsoniter.RawMessage {
	for _, key := range keys {
		if raw, ok := w[key]; ok && !isEmpty(raw) {
			return extendedValue(raw)
		}
	}
	return nil
}

// extendedValue desembrulha os tipos do JSON estendido do Mongo; outros valores passam intactos
func extendedValue(raw jsoniter.RawMessage) jsoniter.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}

	var wrapper map[string]jsoniter.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil || len(wrapper) != 1 {
		return raw
	}

	for key, inner := range wrapper {
		switch key {
		case "$oid", "$numberInt", "$numberLong", "$numberDouble", "$numberDecimal":
			return extendedValue(inner)
		case "$date":
			return extendedDate(inner)
		}
	}
	return raw
}

// extendedDate aceita {"$date": "ISO"}, {"$date": {"$numberLong": "ms"}} e {"$date": ms}
func extendedDate(raw jsoniter.RawMessage) jsoniter.RawMessage {
	inner := extendedValue(raw)

	var millis int64
	var s string
	switch {
	case json.Unmarshal(inner, &s) == nil:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return inner
		}
		millis = n
	case json.Unmarshal(inner, &millis) == nil:
	default:
		return raw
	}

	quoted, err := json.Marshal(time.UnixMilli(millis).UTC().Format(time.RFC3339Nano))
	if err != nil {
		return raw
	}
	return quoted
}

func (w wireRecord) toRecord(loc *time.Location) domain.Record {
	var record domain.Record
	record.ID, _ = unquote(w.field(idKeys))

	if createdAt, ok := unquote(w.field([]string{"createdAt"})); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			record.CreatedAt = parsed
		}
	}

	date, okDate := parseDate(w.field(dateKeys), loc)
	purchase, okPurchase := parseDecimal(w.field(purchasePriceKeys))
	qty, okQty := parseQuantity(w.field(soldQuantityKeys))
	sell, okSell := parseDecimal(w.field(sellPriceKeys))

	record.Date = date
	record.PurchasePrice = purchase
	record.SoldQuantity = qty
	record.SellPrice = sell
	record.Malformed = !(okDate && okPurchase && okQty && okSell)

	return record
}

func isEmpty(raw jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// unquote devolve o conteúdo de uma string JSON ou o literal numérico cru
func unquote(raw jsoniter.RawMessage) (string, bool) {
	if isEmpty(raw) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	return string(bytes.TrimSpace(raw)), true
}

func parseDate(raw jsoniter.RawMessage, loc *time.Location) (time.Time, bool) {
	s, ok := unquote(raw)
	if !ok {
		return time.Time{}, false
	}

	date, err := utils.ParseDate(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func parseDecimal(raw jsoniter.RawMessage) (decimal.Decimal, bool) {
	s, ok := unquote(raw)
	if !ok {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseQuantity(raw jsoniter.RawMessage) (int64, bool) {
	d, ok := parseDecimal(raw)
	if !ok {
		return 0, false
	}
	return utils.WholeInt64(d)
}

// wireInput é o corpo do POST, sempre com os campos neutros
type wireInput struct {
	Date          string           `json:"date,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	SoldQuantity  *int64           `json:"soldQuantity,omitempty"`
	SellPrice     *decimal.Decimal `json:"sellPrice,omitempty"`
}

func newWireInput(input domain.CreateRecordInput, loc *time.Location) wireInput {
	w := wireInput{
		PurchasePrice: input.PurchasePrice,
		SoldQuantity:  input.SoldQuantity,
		SellPrice:     input.SellPrice,
	}
	if input.Date != nil && !input.Date.IsZero() {
		w.Date = input.Date.In(loc).Format(time.DateOnly)
	}
	return w
}
