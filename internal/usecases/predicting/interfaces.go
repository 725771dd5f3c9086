package predicting

import (
	"context"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

// ModelLoader carrega o artefato treinado. Falhas aqui significam modelo indisponível.
type ModelLoader interface {
	Load(ctx context.Context) (domain.Model, error)
}

// MetricsRecorder recebe exatamente um evento por chamada de previsão
type MetricsRecorder interface {
	RecordEvent(ctx context.Context, success bool, latencyMs float64) error
}

// FeatureSource fornece a linha de features mais recente de um país
type FeatureSource interface {
	LatestFeatures(ctx context.Context, country string) (*domain.FeatureRow, error)
}
