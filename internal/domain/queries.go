package domain

import "time"

// FilterMode define a janela de tempo aplicada antes da exibição
type FilterMode string

const (
	FilterAll   FilterMode = "all"
	FilterDay   FilterMode = "day"
	FilterMonth FilterMode = "month"
	FilterYear  FilterMode = "year"
)

// SortKey identifica a coluna usada na ordenação
type SortKey string

const (
	SortByDate          SortKey = "date"
	SortByQuantity      SortKey = "quantity"
	SortByPurchasePrice SortKey = "purchasePrice"
	SortBySellPrice     SortKey = "sellPrice"
	SortByTotalCost     SortKey = "totalCost"
	SortByTotalRevenue  SortKey = "totalRevenue"
	SortByProfit        SortKey = "profit"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// TableQuery são os parâmetros da visão de tabela
type TableQuery struct {
	Filter    FilterMode
	Date      time.Time
	Sort      SortKey
	Direction SortDirection
	Page      int
	PageSize  int
}

// DashboardQuery filtra o dashboard por ano e mês, ambos opcionais
type DashboardQuery struct {
	Year  *int
	Month *int
}
