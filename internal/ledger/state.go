package ledger

import (
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// DefaultPageSize é a quantidade de linhas por página da tabela
const DefaultPageSize = 20

// TableState carrega filtro, ordenação e página atuais da tabela.
// Qualquer mudança de filtro ou ordenação volta para a página 1.
type TableState struct {
	Filter domain.FilterMode
	Date   time.Time
	Sort   SortConfig
	Page   int
}

func NewTableState(ref time.Time) TableState {
	return TableState{
		Filter: domain.FilterAll,
		Date:   ref,
		Sort:   DefaultSortConfig(),
		Page:   1,
	}
}

func (s TableState) WithFilter(mode domain.FilterMode, date time.Time) TableState {
	s.Filter = mode
	s.Date = date
	s.Page = 1
	return s
}

func (s TableState) WithSort(cfg SortConfig) TableState {
	s.Sort = cfg
	s.Page = 1
	return s
}

func (s TableState) ToggleSort(key domain.SortKey) TableState {
	return s.WithSort(s.Sort.Toggle(key))
}

func (s TableState) WithPage(page int) TableState {
	s.Page = page
	return s
}

// TableResult é o que a tabela precisa para renderizar uma página
type TableResult struct {
	State        TableState
	Rows         []domain.RecordView
	TotalPages   int
	TotalRecords int
	Summary      domain.Summary
}

// Apply executa filtro -> ordenação -> paginação e calcula o resumo sobre todas as páginas.
// A página do estado é ajustada para [1, TotalPages] antes de paginar.
func (s TableState) Apply(records []domain.Record, pageSize int) TableResult {
	rows := Sort(Filter(records, s.Filter, s.Date), s.Sort.Key, s.Sort.Direction)

	total := TotalPages(len(rows), pageSize)
	s.Page = ClampPage(s.Page, total)
	page := Paginate(rows, pageSize, s.Page)

	views := make([]domain.RecordView, 0, len(page.Items))
	for _, r := range page.Items {
		views = append(views, domain.NewRecordView(r))
	}

	return TableResult{
		State:        s,
		Rows:         views,
		TotalPages:   total,
		TotalRecords: len(rows),
		Summary:      Summarize(rows),
	}
}
