package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// RecordSource é qualquer origem capaz de devolver o snapshot completo de lançamentos.
// Atendido pelo repositório (servidor) e pelo cliente HTTP (CLI).
//
//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type RecordSource interface {
	List(ctx context.Context) ([]domain.Record, error)
}

type ReportService interface {
	Table(ctx context.Context, query domain.TableQuery) (*domain.TablePage, error)
	Dashboard(ctx context.Context, query domain.DashboardQuery) (*domain.Dashboard, error)
}

type Service struct {
	source   RecordSource
	loc      *time.Location
	pageSize int
	now      func() time.Time
}

func NewService(source RecordSource, loc *time.Location, pageSize int) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if pageSize < 1 {
		pageSize = ledger.DefaultPageSize
	}

	return &Service{
		source:   source,
		loc:      loc,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// Table monta uma página da tabela: filtro -> ordenação -> paginação, com resumo de todas as páginas
func (s *Service) Table(ctx context.Context, query domain.TableQuery) (*domain.TablePage, error) {
	records, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}

	state := s.tableState(query)
	pageSize := query.PageSize
	if pageSize == 0 {
		pageSize = s.pageSize
	}

	result := state.Apply(records, pageSize)

	log.ForContext(ctx).WithFields(log.Fields{
		"query_filter": result.State.Filter,
		"query_sort":   result.State.Sort.Key,
		"query_page":   result.State.Page,
		"record_count": result.TotalRecords,
	}).Debug("Tabela calculada")

	return &domain.TablePage{
		Rows:         result.Rows,
		Page:         result.State.Page,
		PageSize:     pageSize,
		TotalPages:   result.TotalPages,
		TotalRecords: result.TotalRecords,
		Filter:       result.State.Filter,
		Sort:         result.State.Sort.Key,
		Direction:    result.State.Sort.Direction,
		Summary:      result.Summary,
	}, nil
}

func (s *Service) tableState(query domain.TableQuery) ledger.TableState {
	ref := query.Date
	if ref.IsZero() {
		ref = utils.StartOfDay(s.now(), s.loc)
	}

	state := ledger.NewTableState(ref)
	if query.Filter != "" {
		state = state.WithFilter(query.Filter, ref)
	}

	sortCfg := ledger.DefaultSortConfig()
	if query.Sort != "" {
		sortCfg.Key = query.Sort
	}
	if query.Direction != "" {
		sortCfg.Direction = query.Direction
	}
	state = state.WithSort(sortCfg)

	if query.Page > 0 {
		state = state.WithPage(query.Page)
	}

	return state
}

// Dashboard consolida KPIs, buckets mensais e tendência de preços do período.
// A lista de anos é sempre calculada sobre todos os lançamentos.
func (s *Service) Dashboard(ctx context.Context, query domain.DashboardQuery) (*domain.Dashboard, error) {
	records, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := ledger.FilterByPeriod(records, query.Year, query.Month, s.loc)

	monthly := ledger.AggregateByMonth(filtered)
	for i := range monthly {
		monthly[i].Label = utils.ThaiMonthLabel(monthly[i].Start)
	}

	trend := ledger.Trend(filtered)
	for i := range trend {
		trend[i].Label = utils.ThaiDayLabel(trend[i].Date)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"query_year":   query.Year,
		"query_month":  query.Month,
		"record_count": len(filtered),
	}).Debug("Dashboard calculado")

	return &domain.Dashboard{
		Years:   ledger.AvailableYears(records, s.loc),
		Summary: ledger.Summarize(filtered),
		Monthly: monthly,
		Trend:   trend,
	}, nil
}
