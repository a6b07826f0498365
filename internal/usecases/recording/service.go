package recording

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// Limites da coluna NUMERIC(14, 4)
const (
	PriceScale     = 4
	priceIntDigits = 10
)

var priceLimit = decimal.New(1, priceIntDigits)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type RecordService interface {
	Create(ctx context.Context, input domain.CreateRecordInput) (*domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
}

type Service struct {
	repository repository.TransactionRepository
	loc        *time.Location
	now        func() time.Time
}

func NewService(repo repository.TransactionRepository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		repository: repo,
		loc:        loc,
		now:        time.Now,
	}
}

// List devolve todos os lançamentos, do mais recente para o mais antigo
func (s *Service) List(ctx context.Context) ([]domain.Record, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar lançamentos")
		return nil, NewRecordError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar lançamentos no banco de dados")
	}

	return records, nil
}

// Create valida o formulário e grava um novo lançamento.
// Sem data informada, o lançamento recebe o dia atual no fuso da aplicação.
func (s *Service) Create(ctx context.Context, input domain.CreateRecordInput) (*domain.Record, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	date := s.now()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewRecordError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para o lançamento")
	}

	record := &domain.Record{
		ID:            id,
		Date:          utils.StartOfDay(date, s.loc),
		PurchasePrice: *input.PurchasePrice,
		SoldQuantity:  *input.SoldQuantity,
		SellPrice:     *input.SellPrice,
	}

	logger := log.ForContext(ctx).WithField("record_id", record.ID)
	if err := s.repository.Create(ctx, record); err != nil {
		logger.WithError(err).Error("Erro ao gravar lançamento")
		return nil, NewRecordError(ErrSaveRecord, apiErrors.ErrDatabaseOperation, "Falha ao gravar lançamento no banco de dados")
	}

	logger.WithField("record_date", record.Date.Format(time.DateOnly)).Info("Lançamento gravado")

	return record, nil
}

func validate(input domain.CreateRecordInput) error {
	switch {
	case input.PurchasePrice == nil:
		return NewFieldError(ErrMissingField, apiErrors.ErrMissingRequiredData, "purchasePrice", "Preço de compra é obrigatório")
	case input.SoldQuantity == nil:
		return NewFieldError(ErrMissingField, apiErrors.ErrMissingRequiredData, "soldQuantity", "Quantidade vendida é obrigatória")
	case input.SellPrice == nil:
		return NewFieldError(ErrMissingField, apiErrors.ErrMissingRequiredData, "sellPrice", "Preço de venda é obrigatório")
	}

	switch {
	case input.PurchasePrice.IsNegative():
		return NewFieldError(ErrNegativeValue, apiErrors.ErrNegativeValue, "purchasePrice", "Preço de compra não pode ser negativo")
	case *input.SoldQuantity < 0:
		return NewFieldError(ErrNegativeValue, apiErrors.ErrNegativeValue, "soldQuantity", "Quantidade vendida não pode ser negativa")
	case input.SellPrice.IsNegative():
		return NewFieldError(ErrNegativeValue, apiErrors.ErrNegativeValue, "sellPrice", "Preço de venda não pode ser negativo")
	}

	switch {
	case !PriceFits(*input.PurchasePrice):
		return NewFieldError(ErrPriceFormat, apiErrors.ErrInvalidFormat, "purchasePrice", priceFormatDetails("Preço de compra"))
	case !PriceFits(*input.SellPrice):
		return NewFieldError(ErrPriceFormat, apiErrors.ErrInvalidFormat, "sellPrice", priceFormatDetails("Preço de venda"))
	}

	return nil
}

// PriceFits indica se o preço é gravado sem arredondamento nem estouro
func PriceFits(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(PriceScale)) && d.Abs().LessThan(priceLimit)
}

func priceFormatDetails(label string) string {
	return fmt.Sprintf("%s aceita até %d casas decimais e menos de %d dígitos inteiros", label, PriceScale, priceIntDigits)
}
