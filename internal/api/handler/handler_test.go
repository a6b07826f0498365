package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
	recordingmocks "github.com/vfg2006/sales-ledger-api/internal/usecases/recording/mocks"
	reportingmocks "github.com/vfg2006/sales-ledger-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var bangkok = time.FixedZone("ICT", 7*60*60)

func init() {
	log.SetupTestLogger()
}

func serve(routes []router.Route, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := recordingmocks.NewMockRecordService(ctrl)

	service.EXPECT().List(gomock.Any()).Return([]domain.Record{
		{
			ID:            "a1",
			Date:          time.Date(2024, time.January, 5, 0, 0, 0, 0, bangkok),
			PurchasePrice: decimal.NewFromInt(10),
			SoldQuantity:  100,
			SellPrice:     decimal.RequireFromString("15.5"),
		},
	}, nil)

	rec := serve(Transactions(service, bangkok), http.MethodGet, "/v1/transactions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"purchasePrice":10`)
	assert.Contains(t, rec.Body.String(), `"sellPrice":15.5`)
	assert.NotContains(t, rec.Body.String(), "Malformed")
}

func TestListTransactions_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := recordingmocks.NewMockRecordService(ctrl)

	service.EXPECT().List(gomock.Any()).Return(nil,
		recording.NewRecordError(recording.ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar lançamentos no banco de dados"))

	rec := serve(Transactions(service, bangkok), http.MethodGet, "/v1/transactions", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
}

func TestCreateTransaction(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "neutral keys",
			body: `{"date":"2024-01-05","purchasePrice":10,"soldQuantity":100,"sellPrice":15}`,
		},
		{
			name: "legacy keys",
			body: `{"วันที่":"2024-01-05","ราคาซื้อมะพร้าว":"10","จำนวนขายมะพร้าว":"100","ราคาขายมะพร้าว":"15"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := recordingmocks.NewMockRecordService(ctrl)

			service.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, input domain.CreateRecordInput) (*domain.Record, error) {
					require.NotNil(t, input.Date)
					assert.Equal(t, "2024-01-05", input.Date.Format(time.DateOnly))
					assert.True(t, input.PurchasePrice.Equal(decimal.NewFromInt(10)))
					assert.Equal(t, int64(100), *input.SoldQuantity)
					assert.True(t, input.SellPrice.Equal(decimal.NewFromInt(15)))

					return &domain.Record{
						ID:            "new-id",
						Date:          *input.Date,
						PurchasePrice: *input.PurchasePrice,
						SoldQuantity:  *input.SoldQuantity,
						SellPrice:     *input.SellPrice,
					}, nil
				})

			rec := serve(Transactions(service, bangkok), http.MethodPost, "/v1/transactions", tt.body)

			assert.Equal(t, http.StatusCreated, rec.Code)

			var response struct {
				Message string        `json:"message"`
				Data    domain.Record `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.NotEmpty(t, response.Message)
			assert.Equal(t, "new-id", response.Data.ID)
		})
	}
}

func TestCreateTransaction_WithoutDateLeavesItToTheService(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := recordingmocks.NewMockRecordService(ctrl)

	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input domain.CreateRecordInput) (*domain.Record, error) {
			assert.Nil(t, input.Date)
			return &domain.Record{ID: "x"}, nil
		})

	rec := serve(Transactions(service, bangkok), http.MethodPost, "/v1/transactions", `{"date":"","purchasePrice":1,"soldQuantity":1,"sellPrice":2}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTransaction_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		code  string
		field string
	}{
		{name: "not json", body: `{`, code: apiErrors.ErrInvalidRequest},
		{name: "invalid date", body: `{"date":"05/01/2024","purchasePrice":1,"soldQuantity":1,"sellPrice":1}`, code: apiErrors.ErrInvalidFormat, field: "date"},
		{name: "non numeric price", body: `{"purchasePrice":"abc","soldQuantity":1,"sellPrice":1}`, code: apiErrors.ErrInvalidFormat, field: "purchasePrice"},
		{name: "fractional quantity", body: `{"purchasePrice":1,"soldQuantity":1.5,"sellPrice":1}`, code: apiErrors.ErrInvalidFormat, field: "soldQuantity"},
		{name: "quantity just above int64", body: `{"purchasePrice":1,"soldQuantity":9223372036854775808,"sellPrice":1}`, code: apiErrors.ErrInvalidFormat, field: "soldQuantity"},
		{name: "quantity that would wrap to 1", body: `{"purchasePrice":1,"soldQuantity":18446744073709551617,"sellPrice":1}`, code: apiErrors.ErrInvalidFormat, field: "soldQuantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := recordingmocks.NewMockRecordService(ctrl)

			rec := serve(Transactions(service, bangkok), http.MethodPost, "/v1/transactions", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, tt.code, apiErr.Code)
			if tt.field != "" {
				assert.Equal(t, map[string]any{"field": tt.field}, apiErr.Details)
			}
		})
	}
}

func TestCreateTransaction_ValidationErrorFromService(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := recordingmocks.NewMockRecordService(ctrl)

	service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil,
		recording.NewFieldError(recording.ErrNegativeValue, apiErrors.ErrNegativeValue, "sellPrice", "Preço de venda não pode ser negativo"))

	rec := serve(Transactions(service, bangkok), http.MethodPost, "/v1/transactions", `{"purchasePrice":1,"soldQuantity":1,"sellPrice":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrNegativeValue, apiErr.Code)
	assert.Equal(t, map[string]any{"field": "sellPrice"}, apiErr.Details)
}

func TestCreateTransaction_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := recordingmocks.NewMockRecordService(ctrl)

	service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	rec := serve(Transactions(service, bangkok), http.MethodPost, "/v1/transactions", `{"purchasePrice":1,"soldQuantity":1,"sellPrice":1}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
}

func TestGetTransactionTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockReportService(ctrl)

	service.EXPECT().
		Table(gomock.Any(), domain.TableQuery{
			Filter:    domain.FilterMonth,
			Date:      time.Date(2024, time.January, 1, 0, 0, 0, 0, bangkok),
			Sort:      domain.SortByQuantity,
			Direction: domain.Asc,
			Page:      2,
			PageSize:  5,
		}).
		Return(&domain.TablePage{Page: 2, TotalPages: 3, Rows: []domain.RecordView{}}, nil)

	rec := serve(Reports(service, bangkok), http.MethodGet,
		"/v1/transactions/table?filter=month&date=2024-01&sort=qty&direction=asc&page=2&pageSize=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPages":3`)
}

func TestGetTransactionTable_DefaultsPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockReportService(ctrl)

	service.EXPECT().Table(gomock.Any(), domain.TableQuery{}).Return(&domain.TablePage{}, nil)

	rec := serve(Reports(service, bangkok), http.MethodGet, "/v1/transactions/table", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTransactionTable_InvalidQuery(t *testing.T) {
	tests := []struct {
		target string
		field  string
	}{
		{target: "/v1/transactions/table?filter=week", field: "filter"},
		{target: "/v1/transactions/table?sort=color", field: "sort"},
		{target: "/v1/transactions/table?direction=up", field: "direction"},
		{target: "/v1/transactions/table?page=0", field: "page"},
		{target: "/v1/transactions/table?pageSize=abc", field: "pageSize"},
		{target: "/v1/transactions/table?date=yesterday", field: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := reportingmocks.NewMockReportService(ctrl)

			rec := serve(Reports(service, bangkok), http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, apiErrors.ErrInvalidQuery, apiErr.Code)
			assert.Equal(t, map[string]any{"field": tt.field}, apiErr.Details)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockReportService(ctrl)

	service.EXPECT().
		Dashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.DashboardQuery) (*domain.Dashboard, error) {
			require.NotNil(t, query.Year)
			assert.Equal(t, 2024, *query.Year)
			assert.Nil(t, query.Month)
			return &domain.Dashboard{Years: []int{2024, 2023}}, nil
		})

	rec := serve(Reports(service, bangkok), http.MethodGet, "/v1/dashboard?year=2024&month=all", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"years":[2024,2023]`)
}

func TestGetDashboard_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockReportService(ctrl)

	for target, field := range map[string]string{
		"/v1/dashboard?month=13":  "month",
		"/v1/dashboard?year=next": "year",
	} {
		t.Run(target, func(t *testing.T) {
			rec := serve(Reports(service, bangkok), http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, apiErrors.ErrInvalidQuery, apiErr.Code)
			assert.Equal(t, map[string]any{"field": field}, apiErr.Details)
		})
	}
}

func TestGetDashboard_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockReportService(ctrl)

	service.EXPECT().Dashboard(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	rec := serve(Reports(service, bangkok), http.MethodGet, "/v1/dashboard", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type fakeJob struct {
	triggered int
}

func (f *fakeJob) TriggerManualSync() { f.triggered++ }

func (f *fakeJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestCronJobs(t *testing.T) {
	job := &fakeJob{}
	routes := CronJobs(CronJobServices{DailySummaryService: job})

	rec := serve(routes, http.MethodPost, "/v1/cron/daily-summary/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = serve(routes, http.MethodPost, "/v1/cron/unknown/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = serve(routes, http.MethodGet, "/v1/cron/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily-summary":{"sync_running":false}}`, rec.Body.String())
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(fakePinger{}), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = serve(Healthcheck(fakePinger{err: errors.New("refused")}), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrCommunication, decodeAPIError(t, rec).Code)
}
