package domain

// TablePage é a resposta da visão de tabela
type TablePage struct {
	Rows         []RecordView  `json:"rows"`
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalPages   int           `json:"totalPages"`
	TotalRecords int           `json:"totalRecords"`
	Filter       FilterMode    `json:"filter"`
	Sort         SortKey       `json:"sort"`
	Direction    SortDirection `json:"direction"`
	Summary      Summary       `json:"summary"`
}

// Dashboard é a resposta agregada para a tela de gráficos
type Dashboard struct {
	Years   []int           `json:"years"`
	Summary Summary         `json:"summary"`
	Monthly []MonthlyBucket `json:"monthly"`
	Trend   []TrendPoint    `json:"trend"`
}
