package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-forecast-api/internal/api/handler"
	"github.com/vfg2006/revenue-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/predicting"
	"github.com/vfg2006/revenue-forecast-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	Predictions predicting.PredictionService
	Metrics     handler.MetricsReader
	Auth        middleware.TokenValidator
	CronJobs    handler.CronJobServices
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Predictions)...),
		router.WithRoutes(handler.Predictions(deps.Predictions, limiter)...),
		router.WithRoutes(handler.Metrics(deps.Metrics)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Auth, "/v1/cron"),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.Predictions == nil || deps.Metrics == nil || deps.Auth == nil {
		return nil, fmt.Errorf("dependências obrigatórias da API ausentes")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
