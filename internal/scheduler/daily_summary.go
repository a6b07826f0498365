package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// Job é o que o endpoint de cron precisa para disparar e inspecionar um agendamento
type Job interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// DailySummaryConfig representa a configuração do resumo diário
type DailySummaryConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailySummaryService calcula e registra no log o resumo de vendas do dia anterior
type DailySummaryService struct {
	scheduler       *gocron.Scheduler
	config          DailySummaryConfig
	transactionRepo repository.TransactionRepository
	loc             *time.Location
	now             func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummaryDay      string
	lastSummary         *domain.Summary
}

func NewDailySummaryService(transactionRepo repository.TransactionRepository, appConfig *config.Config) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: appConfig.DailySummary.CronSchedule,
		Enabled:      appConfig.DailySummary.Enabled,
	}

	loc := appConfig.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
		"sync_enabled":  summaryConfig.Enabled,
		"timezone":      loc.String(),
	}).Info("Configuração do resumo diário carregada")

	return &DailySummaryService{
		scheduler:       gocron.NewScheduler(loc),
		config:          summaryConfig,
		transactionRepo: transactionRepo,
		loc:             loc,
		now:             time.Now,
	}
}

// Start inicia o agendador
func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// run resume o dia anterior; execuções sobrepostas são ignoradas
func (s *DailySummaryService) run(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	yesterday := utils.StartOfDay(startTime, s.loc).AddDate(0, 0, -1)

	summary, count, err := s.SummarizeDay(ctx, yesterday)
	if err != nil {
		logrus.WithError(err).WithField("day", yesterday.Format(time.DateOnly)).Error("Erro ao calcular resumo diário")
		return
	}

	logrus.WithFields(logrus.Fields{
		"day":           yesterday.Format(time.DateOnly),
		"records":       count,
		"total_qty":     summary.TotalQty,
		"total_cost":    summary.TotalCost.String(),
		"total_revenue": summary.TotalRevenue.String(),
		"total_profit":  summary.TotalProfit.String(),
		"duration":      time.Since(startTime).String(),
	}).Info("Resumo diário concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSummaryDay = yesterday.Format(time.DateOnly)
	s.lastSummary = &summary
	s.syncMutex.Unlock()
}

// SummarizeDay calcula o resumo dos lançamentos de um único dia
func (s *DailySummaryService) SummarizeDay(ctx context.Context, day time.Time) (domain.Summary, int, error) {
	start := utils.StartOfDay(day, s.loc)

	records, err := s.transactionRepo.ListBetween(ctx, start, start)
	if err != nil {
		return domain.Summary{}, 0, fmt.Errorf("erro ao buscar lançamentos do dia: %w", err)
	}

	records = ledger.Filter(records, domain.FilterDay, start)
	return ledger.Summarize(records), len(records), nil
}

// TriggerManualSync dispara o resumo fora do horário agendado
func (s *DailySummaryService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando resumo diário manual")
	go s.run(context.Background())
}

// GetStatus retorna o status atual do agendamento
func (s *DailySummaryService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSummary != nil {
		status["last_summary_day"] = s.lastSummaryDay
		status["last_summary"] = *s.lastSummary
	}

	return status
}
