package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBucket é o consolidado dos registros de um mês do calendário
type MonthlyBucket struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"` // 1-12
	Start        time.Time       `json:"start"`
	Label        string          `json:"label,omitempty"`
	TotalQty     int64           `json:"totalQty"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// Summary reúne os totais exibidos nos cards de KPI e no rodapé da tabela
type Summary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	TotalQty     int64           `json:"totalQty"`
}

// TrendPoint é um ponto do gráfico de evolução de preços
type TrendPoint struct {
	Date          time.Time       `json:"date"`
	Label         string          `json:"label,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	ProfitPerUnit decimal.Decimal `json:"profitPerUnit"`
}
