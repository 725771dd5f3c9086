package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/ingestion"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/model"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/repository"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/storage/featuretable"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/storage/metricsfile"
	"github.com/vfg2006/revenue-forecast-api/internal/api"
	"github.com/vfg2006/revenue-forecast-api/internal/api/handler"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/scheduler"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/monitoring"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/pipeline"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/predicting"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db *database.Handle
	if database.Required(cfg) {
		db, err = database.Open(ctx, cfg)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
		}
		defer db.Conn.Close()
	}

	// Métricas: arquivo JSON ou tabela prediction_metrics
	var metricsRepo monitoring.MetricsRepository
	if cfg.Metrics.Backend == config.MetricsBackendFile {
		metricsRepo = metricsfile.NewStore(cfg.Metrics.File)
	} else {
		metricsRepo = repository.NewPredictionMetricsRepository(db.Conn, db.Format)
	}

	metricsStore := monitoring.NewStore(metricsRepo)
	if err := metricsStore.Activate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao ativar o store de métricas")
	}

	// Features: tabela daily_features ou arquivo CSV gerado pelo pipeline
	var (
		featureSource predicting.FeatureSource
		featureRepo   pipeline.FeatureRepository
	)
	if cfg.Features.DBEnabled {
		dailyFeatures := repository.NewDailyFeatureRepository(db.Conn, db.Format)
		featureSource = dailyFeatures
		featureRepo = dailyFeatures
	} else {
		featureSource = featuretable.NewReader(cfg.Features.File)
	}

	predictionService := predicting.NewService(
		model.NewFileLoader(cfg.Model.Path),
		metricsStore,
		featureSource,
		predicting.Options{
			DefaultCountries: cfg.Prediction.Countries,
			MaxConcurrency:   cfg.Prediction.MaxConcurrency,
			RecentLimit:      cfg.Prediction.RecentLimit,
		},
	)

	runner := pipeline.NewRunner(
		ingestion.NewCSVReader(),
		featuretable.NewWriter(),
		featureRepo,
		pipeline.OptionsFromConfig(cfg),
	)

	featurePipelineSyncService := scheduler.NewFeaturePipelineSyncService(runner, cfg)
	if err := featurePipelineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline de features")
	} else {
		logrus.Info("Agendador do pipeline de features iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Predictions: predictionService,
		Metrics:     metricsStore,
		Auth:        authenticating.NewService(cfg),
		CronJobs: handler.CronJobServices{
			FeaturePipelineSyncService: featurePipelineSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
