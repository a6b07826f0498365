package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// GetTransactionTable devolve uma página da tabela de lançamentos com o resumo do filtro
func GetTransactionTable(service reporting.ReportService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, field, err := parseTableQuery(r.URL.Query(), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidQuery, err.Error(), map[string]string{"field": field})
			return
		}

		page, err := service.Table(r.Context(), query)
		if err != nil {
			logger.WithError(err).Error("table: erro ao montar tabela")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar lançamentos", nil)
			return
		}

		if err := writeJSON(w, http.StatusOK, page); err != nil {
			logger.WithError(err).Error("table: erro ao codificar resposta")
		}
	})
}

// GetDashboard devolve KPIs, buckets mensais e tendência de preços
func GetDashboard(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, field, err := parseDashboardQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidQuery, err.Error(), map[string]string{"field": field})
			return
		}

		dashboard, err := service.Dashboard(r.Context(), query)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar lançamentos", nil)
			return
		}

		if err := writeJSON(w, http.StatusOK, dashboard); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}

// parseTableQuery devolve também o nome do parâmetro inválido, usado nos detalhes do erro
func parseTableQuery(values url.Values, loc *time.Location) (domain.TableQuery, string, error) {
	var query domain.TableQuery

	if v := values.Get("filter"); v != "" {
		mode, ok := ledger.ParseFilterMode(v)
		if !ok {
			return query, "filter", fmt.Errorf("filtro inválido: %q (use all, day, month ou year)", v)
		}
		query.Filter = mode
	}

	if v := values.Get("date"); v != "" {
		date, err := utils.ParseReferenceDate(v, loc)
		if err != nil {
			return query, "date", err
		}
		query.Date = date
	}

	if v := values.Get("sort"); v != "" {
		key, ok := ledger.ParseSortKey(v)
		if !ok {
			return query, "sort", fmt.Errorf("coluna de ordenação inválida: %q", v)
		}
		query.Sort = key
	}

	if v := values.Get("direction"); v != "" {
		direction, ok := ledger.ParseSortDirection(v)
		if !ok {
			return query, "direction", fmt.Errorf("direção inválida: %q (use asc ou desc)", v)
		}
		query.Direction = direction
	}

	var err error
	if query.Page, err = positiveInt(values, "page"); err != nil {
		return query, "page", err
	}
	if query.PageSize, err = positiveInt(values, "pageSize"); err != nil {
		return query, "pageSize", err
	}

	return query, "", nil
}

func positiveInt(values url.Values, key string) (int, error) {
	v := values.Get(key)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s deve ser um inteiro positivo", key)
	}
	return n, nil
}

func parseDashboardQuery(values url.Values) (domain.DashboardQuery, string, error) {
	var query domain.DashboardQuery

	year, err := optionalInt(values, "year")
	if err != nil {
		return query, "year", err
	}
	month, err := optionalInt(values, "month")
	if err != nil {
		return query, "month", err
	}
	if month != nil && (*month < 1 || *month > 12) {
		return query, "month", fmt.Errorf("mês inválido: %d (use 1-12)", *month)
	}

	query.Year = year
	query.Month = month
	return query, "", nil
}

// optionalInt trata ausente ou "all" como sem filtro
func optionalInt(values url.Values, key string) (*int, error) {
	v := strings.TrimSpace(values.Get(key))
	if v == "" || strings.EqualFold(v, "all") {
		return nil, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s inválido: %q", key, v)
	}
	return &n, nil
}
