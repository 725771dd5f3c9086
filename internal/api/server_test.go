package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/storage/metricsfile"
	"github.com/vfg2006/revenue-forecast-api/internal/api/handler"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/internal/scheduler"
	schedulermocks "github.com/vfg2006/revenue-forecast-api/internal/scheduler/mocks"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/monitoring"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/predicting/mocks"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/pipeline"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: config.RateLimit{RPS: 0.001, Burst: 2},
		Auth:      config.Auth{Secret: "segredo"},
	}
}

func TestNewHandler_Integration(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	predictions := mocks.NewMockPredictionService(ctrl)
	runner := schedulermocks.NewMockPipelineRunner(ctrl)
	auth := authenticating.NewService(cfg)
	store := monitoring.NewStore(metricsfile.NewStore(filepath.Join(t.TempDir(), "metrics.json")))

	runner.EXPECT().RunDefault(gomock.Any()).Return(&pipeline.Report{FeatureRows: 1}, nil).AnyTimes()

	h := NewHandler(cfg, Dependencies{
		Predictions: predictions,
		Metrics:     store,
		Auth:        auth,
		CronJobs: handler.CronJobServices{
			FeaturePipelineSyncService: scheduler.NewFeaturePipelineSyncService(runner, cfg),
		},
	})

	adminToken, err := auth.GenerateToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	t.Run("Health é público", func(t *testing.T) {
		predictions.EXPECT().ModelLoaded().Return(false)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("Cron exige token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Cron com token de admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "feature-pipeline")
	})

	t.Run("Limite de requisições nas previsões", func(t *testing.T) {
		predictions.EXPECT().PredictCountry(gomock.Any(), "UK").
			Return(&domain.PredictionResult{Country: "UK"}, nil).Times(2)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/predict/UK", nil)
			req.RemoteAddr = "10.1.1.1:1234"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("Métricas sem histórico", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"predictions_count":0`)
	})
}

func TestNew_MissingDependencies(t *testing.T) {
	_, err := New(testConfig(), Dependencies{})
	assert.Error(t, err)
}
