// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Os clientes esperam números no JSON, não strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Record representa um lançamento do livro de vendas (um por envio do formulário)
type Record struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SoldQuantity  int64           `json:"soldQuantity"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	CreatedAt     time.Time       `json:"createdAt"`

	// Malformed marca registros recebidos com data inválida ou campos numéricos ausentes
	Malformed bool `json:"-"`
}

// Usable indica se o registro pode participar de filtros, agregações e somatórios
func (r Record) Usable() bool {
	return !r.Malformed && !r.Date.IsZero()
}

func (r Record) quantity() decimal.Decimal {
	return decimal.NewFromInt(r.SoldQuantity)
}

// TotalCost = quantidade vendida * preço de compra
func (r Record) TotalCost() decimal.Decimal {
	return r.quantity().Mul(r.PurchasePrice)
}

// TotalRevenue = quantidade vendida * preço de venda
func (r Record) TotalRevenue() decimal.Decimal {
	return r.quantity().Mul(r.SellPrice)
}

// Profit = receita - custo
func (r Record) Profit() decimal.Decimal {
	return r.TotalRevenue().Sub(r.TotalCost())
}

func (r Record) ProfitPerUnit() decimal.Decimal {
	return r.SellPrice.Sub(r.PurchasePrice)
}

// RecordView é uma linha da tabela: o registro mais as métricas derivadas
type RecordView struct {
	Record
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	Profit       decimal.Decimal `json:"profit"`
}

func NewRecordView(r Record) RecordView {
	return RecordView{
		Record:       r,
		TotalCost:    r.TotalCost(),
		TotalRevenue: r.TotalRevenue(),
		Profit:       r.Profit(),
	}
}

// CreateRecordInput são os campos de negócio enviados pelo formulário de lançamento
type CreateRecordInput struct {
	Date          *time.Time       `json:"date,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SoldQuantity  *int64           `json:"soldQuantity"`
	SellPrice     *decimal.Decimal `json:"sellPrice"`
}
