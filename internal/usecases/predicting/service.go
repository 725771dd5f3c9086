package predicting

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
	"github.com/vfg2006/revenue-forecast-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var countryPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]{1,63}$`)

type PredictionService interface {
	PredictOne(ctx context.Context, country string, features domain.FeatureVector) (*domain.PredictionResult, error)
	PredictRequest(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error)
	PredictCountry(ctx context.Context, country string) (*domain.PredictionResult, error)
	PredictAll(ctx context.Context, countries []string) (*domain.BatchPrediction, error)
	Recent(limit int) []domain.PredictionResult
	ModelLoaded() bool
}

type Options struct {
	// DefaultCountries é usado por PredictAll quando nenhum país é informado
	DefaultCountries []string
	MaxConcurrency   int
	RecentLimit      int
}

type modelHandle struct {
	model domain.Model
}

type Service struct {
	loader   ModelLoader
	metrics  MetricsRecorder
	features FeatureSource
	opts     Options
	now      func() time.Time

	// leitura sem lock depois do primeiro carregamento bem-sucedido
	model  atomic.Pointer[modelHandle]
	loadMu sync.Mutex

	recent *recentLog
}

func NewService(loader ModelLoader, metrics MetricsRecorder, features FeatureSource, opts Options) *Service {
	if opts.MaxConcurrency < 1 {
		opts.MaxConcurrency = 1
	}

	return &Service{
		loader:   loader,
		metrics:  metrics,
		features: features,
		opts:     opts,
		now:      time.Now,
		recent:   newRecentLog(opts.RecentLimit),
	}
}

func (s *Service) ModelLoaded() bool {
	return s.model.Load() != nil
}

// loadModel devolve o modelo em cache ou tenta carregá-lo. Falhas não ficam em
// cache: a próxima chamada tenta de novo.
func (s *Service) loadModel(ctx context.Context) (domain.Model, error) {
	if h := s.model.Load(); h != nil {
		return h.model, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if h := s.model.Load(); h != nil {
		return h.model, nil
	}

	m, err := s.loader.Load(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao carregar modelo")
		return nil, NewPredictionError(ErrModelUnavailable, CodeModelUnavailable, "", err.Error())
	}
	if m == nil {
		return nil, NewPredictionError(ErrModelUnavailable, CodeModelUnavailable, "", "carregador retornou modelo nulo")
	}

	s.model.Store(&modelHandle{model: m})
	return m, nil
}

// PredictOne calcula a previsão de um país a partir de um vetor de features já montado
func (s *Service) PredictOne(ctx context.Context, country string, features domain.FeatureVector) (*domain.PredictionResult, error) {
	return s.measure(ctx, func() (*domain.PredictionResult, error) {
		normalized, err := normalizeCountry(country)
		if err != nil {
			return nil, err
		}
		return s.predict(ctx, normalized, features)
	})
}

// PredictRequest valida o corpo livre da requisição contra o schema de features
func (s *Service) PredictRequest(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	return s.measure(ctx, func() (*domain.PredictionResult, error) {
		country, err := normalizeCountry(req.Country)
		if err != nil {
			return nil, err
		}

		if _, err := utils.ParseDate(req.Date); err != nil {
			return nil, NewPredictionError(ErrInvalidFeatures, CodeInvalidFeatures, country, fmt.Sprintf("data inválida: %q", req.Date))
		}

		if len(req.Features) == 0 {
			return nil, NewPredictionError(ErrInvalidFeatures, CodeInvalidFeatures, country, "nenhuma feature informada")
		}

		vector, err := domain.ParseFeatureVector(req.Features)
		if err != nil {
			return nil, NewPredictionError(ErrInvalidFeatures, CodeInvalidFeatures, country, err.Error())
		}

		return s.predict(ctx, country, vector)
	})
}

// PredictCountry usa a linha de features mais recente do país
func (s *Service) PredictCountry(ctx context.Context, country string) (*domain.PredictionResult, error) {
	return s.measure(ctx, func() (*domain.PredictionResult, error) {
		normalized, err := normalizeCountry(country)
		if err != nil {
			return nil, err
		}

		row, err := s.features.LatestFeatures(ctx, normalized)
		if err != nil {
			if errors.Is(err, domain.ErrFeaturesNotFound) {
				return nil, NewPredictionError(ErrFeaturesUnavailable, CodeFeaturesUnavailable, normalized, err.Error())
			}
			return nil, NewPredictionError(ErrFeaturesUnavailable, CodePredictionFailed, normalized, err.Error())
		}

		return s.predict(ctx, normalized, row.Vector())
	})
}

// PredictAll prevê cada país de forma independente. Só falha por inteiro quando
// o modelo não pode ser carregado; demais erros ficam no item do país.
func (s *Service) PredictAll(ctx context.Context, countries []string) (*domain.BatchPrediction, error) {
	if len(countries) == 0 {
		countries = s.opts.DefaultCountries
	}
	countries = dedupe(countries)

	start := time.Now()
	if _, err := s.loadModel(ctx); err != nil {
		if recErr := s.record(ctx, start, err); recErr != nil {
			return nil, errors.Join(recErr, err)
		}
		return nil, err
	}

	predictions := make([]domain.CountryPrediction, len(countries))

	var g errgroup.Group
	g.SetLimit(s.opts.MaxConcurrency)

	for i, country := range countries {
		g.Go(func() error {
			item := domain.CountryPrediction{Country: country}

			result, err := s.PredictCountry(ctx, country)
			if err != nil {
				item.Error = err.Error()
				item.Code = ErrorCode(err)
			} else {
				item.Country = result.Country
				item.Result = result
			}

			predictions[i] = item
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, p := range predictions {
		if p.Result == nil {
			failed++
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"countries": len(countries),
		"failed":    failed,
	}).Info("Previsão em lote concluída")

	return &domain.BatchPrediction{Predictions: predictions}, nil
}

func (s *Service) Recent(limit int) []domain.PredictionResult {
	return s.recent.list(limit)
}

func (s *Service) predict(ctx context.Context, country string, features domain.FeatureVector) (*domain.PredictionResult, error) {
	model, err := s.loadModel(ctx)
	if err != nil {
		return nil, err
	}

	if missing := features.Missing(model.RequiredFeatures()); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, name := range missing {
			names[i] = string(name)
		}
		return nil, NewPredictionError(ErrInvalidFeatures, CodeInvalidFeatures, country, "features ausentes: "+strings.Join(names, ", "))
	}

	for _, name := range sortedNames(features) {
		if !utils.IsFinite(features[name]) {
			return nil, NewPredictionError(ErrInvalidFeatures, CodeInvalidFeatures, country, fmt.Sprintf("valor não finito em %s", name))
		}
	}

	value, err := model.Predict(features)
	if err != nil {
		return nil, NewPredictionError(ErrPredictionFailed, CodePredictionFailed, country, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewPredictionError(ErrPredictionFailed, CodePredictionFailed, country, "erro ao gerar id da previsão")
	}

	result := &domain.PredictionResult{
		ID:               id,
		Country:          country,
		PredictedRevenue: utils.RoundWithTwoDecimalPlace(value),
		ModelVersion:     model.Version(),
		Timestamp:        s.now().UTC(),
	}

	return result, nil
}

// measure executa uma chamada de previsão e registra exatamente um evento de métricas.
// Se a gravação das métricas falhar, a chamada falha com o erro de persistência,
// que prevalece sobre o erro da previsão na escolha do código.
func (s *Service) measure(ctx context.Context, fn func() (*domain.PredictionResult, error)) (*domain.PredictionResult, error) {
	start := time.Now()
	result, err := fn()

	if recErr := s.record(ctx, start, err); recErr != nil {
		if err != nil {
			return nil, errors.Join(recErr, err)
		}
		return nil, recErr
	}
	if err != nil {
		return nil, err
	}

	s.recent.add(*result)
	return result, nil
}

func (s *Service) record(ctx context.Context, start time.Time, predErr error) error {
	latencyMs := float64(time.Since(start).Microseconds()) / 1000
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"latency_ms": latencyMs,
		"success":    predErr == nil,
	})

	// o cancelamento do cliente não pode interromper a gravação no meio
	if err := s.metrics.RecordEvent(context.WithoutCancel(ctx), predErr == nil, latencyMs); err != nil {
		logger.WithError(err).Error("Erro ao registrar métricas da previsão")
		return NewPredictionError(err, CodeMetricsPersistence, "", "")
	}

	if predErr != nil {
		logger.WithError(predErr).Warn("Previsão falhou")
	} else {
		logger.Debug("Previsão concluída")
	}
	return nil
}

func normalizeCountry(country string) (string, error) {
	trimmed := strings.TrimSpace(country)
	if !countryPattern.MatchString(trimmed) {
		return "", NewPredictionError(ErrInvalidCountry, CodeInvalidCountry, "", fmt.Sprintf("valor recebido: %q", country))
	}
	return strings.ToUpper(trimmed), nil
}

func dedupe(countries []string) []string {
	out := make([]string, 0, len(countries))
	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		key := strings.ToUpper(strings.TrimSpace(c))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func sortedNames(v domain.FeatureVector) []domain.FeatureName {
	names := make([]domain.FeatureName, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
