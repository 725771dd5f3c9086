package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/pipeline"
)

//go:generate mockgen -source=feature_pipeline_sync.go -destination=mocks/mock_feature_pipeline_sync.go -package=mocks

// PipelineRunner executa o pipeline de features com as opções padrão
type PipelineRunner interface {
	RunDefault(ctx context.Context) (*pipeline.Report, error)
}

// FeaturePipelineSyncConfig representa a configuração do agendador do pipeline de features
type FeaturePipelineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// FeaturePipelineSyncService agenda a reconstrução periódica da tabela de features
type FeaturePipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              FeaturePipelineSyncConfig
	runner              PipelineRunner
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *pipeline.Report
	lastError           string
}

// NewFeaturePipelineSyncService cria uma nova instância do serviço de sincronização do pipeline
func NewFeaturePipelineSyncService(runner PipelineRunner, appConfig *config.Config) *FeaturePipelineSyncService {
	syncConfig := FeaturePipelineSyncConfig{
		CronSchedule: appConfig.FeaturePipelineSync.CronSchedule,
		SyncEnabled:  appConfig.FeaturePipelineSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline de features carregada")

	return &FeaturePipelineSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		runner:    runner,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *FeaturePipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do pipeline de features desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline de features")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pipeline de features: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline de features")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa o pipeline uma vez; execuções concorrentes são ignoradas
func (s *FeaturePipelineSyncService) runSync(ctx context.Context) bool {
	if !s.tryAcquire() {
		logrus.Info("Pipeline de features já em andamento, ignorando")
		return false
	}
	s.execute(ctx)
	return true
}

func (s *FeaturePipelineSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *FeaturePipelineSyncService) execute(ctx context.Context) {
	logrus.Info("Iniciando execução do pipeline de features")

	report, err := s.runner.RunDefault(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao executar pipeline de features")
		return
	}

	s.lastError = ""
	s.lastReport = report
	logrus.WithFields(logrus.Fields{
		"feature_rows": report.FeatureRows,
		"days":         report.Days,
		"duration":     s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Pipeline de features concluído")
}

// TriggerManualSync inicia manualmente o pipeline de features.
// Retorna false quando já existe uma execução em andamento.
func (s *FeaturePipelineSyncService) TriggerManualSync() bool {
	if !s.tryAcquire() {
		logrus.Info("Pipeline de features já em andamento, ignorando solicitação manual")
		return false
	}

	s.syncMutex.Lock()
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do pipeline de features")
	go s.execute(ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *FeaturePipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastReport != nil {
		status["last_report"] = *s.lastReport
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	return status
}
