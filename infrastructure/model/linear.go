package model

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

var (
	ErrMissingFeature  = errors.New("feature exigida pelo modelo ausente")
	ErrNonFiniteOutput = errors.New("modelo produziu valor não finito")
)

// LinearModel é o formato do artefato exportado após o treino:
// receita = intercept + soma(coeficiente * feature)
type LinearModel struct {
	Name         string                         `json:"name"`
	ModelVersion string                         `json:"version"`
	Intercept    float64                        `json:"intercept"`
	Coefficients map[domain.FeatureName]float64 `json:"coefficients"`

	required []domain.FeatureName
}

func (m *LinearModel) validate() error {
	if len(m.Coefficients) == 0 {
		return errors.New("modelo sem coeficientes")
	}
	if !isFinite(m.Intercept) {
		return errors.New("intercepto não finito")
	}

	required := make([]domain.FeatureName, 0, len(m.Coefficients))
	for name, weight := range m.Coefficients {
		if !domain.IsKnownFeature(name) {
			return fmt.Errorf("coeficiente para feature desconhecida: %s", name)
		}
		if !isFinite(weight) {
			return fmt.Errorf("coeficiente não finito para %s", name)
		}
		required = append(required, name)
	}
	sort.Slice(required, func(i, j int) bool { return required[i] < required[j] })
	m.required = required

	return nil
}

func (m *LinearModel) RequiredFeatures() []domain.FeatureName {
	out := make([]domain.FeatureName, len(m.required))
	copy(out, m.required)
	return out
}

func (m *LinearModel) Version() string {
	return m.ModelVersion
}

func (m *LinearModel) Predict(features domain.FeatureVector) (float64, error) {
	result := m.Intercept
	for _, name := range m.required {
		value, ok := features[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingFeature, name)
		}
		result += m.Coefficients[name] * value
	}

	if !isFinite(result) {
		return 0, ErrNonFiniteOutput
	}

	return result, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
