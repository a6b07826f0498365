package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// Nomes aceitos por campo no corpo do POST. O formulário antigo enviava as chaves em tailandês.
var (
	dateFields          = []string{"date", "วันที่"}
	purchasePriceFields = []string{"purchasePrice", "ราคาซื้อมะพร้าว"}
	soldQuantityFields  = []string{"soldQuantity", "จำนวนขายมะพร้าว"}
	sellPriceFields     = []string{"sellPrice", "ราคาขายมะพร้าว"}
)

type createTransactionResponse struct {
	Message string         `json:"message"`
	Data    *domain.Record `json:"data"`
}

// ListTransactions devolve todos os lançamentos, do mais recente para o mais antigo
func ListTransactions(service recording.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, err := service.List(r.Context())
		if err != nil {
			logger.WithError(err).Error("transactions: erro ao listar lançamentos")
			writeRecordError(w, err, "Erro ao listar lançamentos")
			return
		}

		if err := writeJSON(w, http.StatusOK, records); err != nil {
			logger.WithError(err).Error("transactions: erro ao codificar resposta")
		}
	})
}

func CreateTransaction(service recording.RecordService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body map[string]jsoniter.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		input, field, err := decodeCreateInput(body, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"field": field})
			return
		}

		record, err := service.Create(r.Context(), input)
		if err != nil {
			logger.WithError(err).Warn("transactions: lançamento rejeitado")
			writeRecordError(w, err, "Erro ao gravar lançamento")
			return
		}

		err = writeJSON(w, http.StatusCreated, createTransactionResponse{
			Message: "Lançamento registrado com sucesso",
			Data:    record,
		})
		if err != nil {
			logger.WithError(err).Error("transactions: erro ao codificar resposta")
		}
	})
}

// decodeCreateInput resolve os apelidos de campo e converte os valores.
// Campos ausentes ficam nil para que a validação do serviço responda com o código certo.
func decodeCreateInput(body map[string]jsoniter.RawMessage, loc *time.Location) (domain.CreateRecordInput, string, error) {
	var input domain.CreateRecordInput

	if raw, ok := lookup(body, dateFields); ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return input, "date", errors.New("data deve ser uma string")
		}
		if strings.TrimSpace(s) != "" {
			date, err := utils.ParseDate(s, loc)
			if err != nil {
				return input, "date", err
			}
			input.Date = &date
		}
	}

	if raw, ok := lookup(body, purchasePriceFields); ok {
		d, err := decodeDecimal(raw)
		if err != nil {
			return input, "purchasePrice", fmt.Errorf("preço de compra inválido: %w", err)
		}
		input.PurchasePrice = &d
	}

	if raw, ok := lookup(body, soldQuantityFields); ok {
		d, err := decodeDecimal(raw)
		if err != nil {
			return input, "soldQuantity", fmt.Errorf("quantidade vendida inválida: %w", err)
		}
		if !d.IsInteger() {
			return input, "soldQuantity", errors.New("quantidade vendida deve ser um número inteiro")
		}
		qty, ok := utils.WholeInt64(d)
		if !ok {
			return input, "soldQuantity", errors.New("quantidade vendida fora do intervalo permitido")
		}
		input.SoldQuantity = &qty
	}

	if raw, ok := lookup(body, sellPriceFields); ok {
		d, err := decodeDecimal(raw)
		if err != nil {
			return input, "sellPrice", fmt.Errorf("preço de venda inválido: %w", err)
		}
		input.SellPrice = &d
	}

	return input, "", nil
}

func lookup(body map[string]jsoniter.RawMessage, keys []string) (jsoniter.RawMessage, bool) {
	for _, key := range keys {
		raw, ok := body[key]
		if ok && strings.TrimSpace(string(raw)) != "null" {
			return raw, true
		}
	}
	return nil, false
}

// decodeDecimal aceita número JSON ou string numérica (campos de formulário)
func decodeDecimal(raw jsoniter.RawMessage) (decimal.Decimal, error) {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func writeRecordError(w http.ResponseWriter, err error, fallback string) {
	var recordErr *recording.RecordError
	if errors.As(err, &recordErr) {
		var details any
		if recordErr.Field != "" {
			details = map[string]string{"field": recordErr.Field}
		}
		apiErrors.WriteError(w, recordErr.Code, recordErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, recording.ErrFetchRecords) || errors.Is(err, recording.ErrSaveRecord):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
