package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*DailySummaryService, *mocks.MockTransactionRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTransactionRepository(ctrl)

	cfg := &config.Config{
		App:          config.App{Timezone: "UTC"},
		DailySummary: config.DailySummary{CronSchedule: "0 6 * * *", Enabled: true},
	}

	svc := NewDailySummaryService(repo, cfg)
	svc.now = func() time.Time { return time.Date(2024, time.January, 6, 6, 0, 0, 0, time.UTC) }
	return svc, repo
}

func rec(id string, date time.Time, purchase int64, qty int64, sell int64) domain.Record {
	return domain.Record{
		ID:            id,
		Date:          date,
		PurchasePrice: decimal.NewFromInt(purchase),
		SoldQuantity:  qty,
		SellPrice:     decimal.NewFromInt(sell),
	}
}

func TestDailySummaryService_RunSummarizesYesterday(t *testing.T) {
	svc, repo := newTestService(t)

	yesterday := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().
		ListBetween(gomock.Any(), yesterday, yesterday).
		Return([]domain.Record{
			rec("a", yesterday, 10, 100, 15),
			rec("b", yesterday, 12, 10, 16),
		}, nil)

	svc.run(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "2024-01-05", status["last_summary_day"])

	summary, ok := status["last_summary"].(domain.Summary)
	require.True(t, ok)
	assert.Equal(t, int64(110), summary.TotalQty)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(1660)))
	assert.True(t, summary.TotalProfit.Equal(decimal.NewFromInt(540)))
}

func TestDailySummaryService_RunKeepsPreviousSummaryOnError(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().
		ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	svc.run(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.NotContains(t, status, "last_summary")
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestDailySummaryService_RunSkipsWhenAlreadyRunning(t *testing.T) {
	svc, _ := newTestService(t)
	svc.syncRunning = true

	// nenhuma chamada ao repositório é esperada
	svc.run(context.Background())

	assert.Equal(t, true, svc.GetStatus()["sync_running"])
}

func TestDailySummaryService_SummarizeDayIgnoresOtherDays(t *testing.T) {
	svc, repo := newTestService(t)

	day := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().
		ListBetween(gomock.Any(), day, day).
		Return([]domain.Record{
			rec("feb01", day, 11, 80, 14),
			rec("feb02", day.AddDate(0, 0, 1), 1, 1, 1),
			{ID: "broken", Malformed: true},
		}, nil)

	summary, count, err := svc.SummarizeDay(context.Background(), day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, summary.TotalProfit.Equal(decimal.NewFromInt(240)))
}

func TestDailySummaryService_StartDisabled(t *testing.T) {
	svc, _ := newTestService(t)
	svc.config.Enabled = false

	assert.NoError(t, svc.Start(context.Background()))
}

func TestDailySummaryService_StartInvalidCron(t *testing.T) {
	svc, _ := newTestService(t)
	svc.config.CronSchedule = "not a cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, svc.Start(ctx))
}
