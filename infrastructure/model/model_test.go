package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

func TestFileLoader_Load(t *testing.T) {
	m, err := NewFileLoader("testdata/model.json").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024.05.1", m.Version())
	assert.Equal(t, []domain.FeatureName{
		domain.FeatureIsWeekend,
		domain.FeatureRevenueLag1,
		domain.FeatureRevenueRollingMean7,
	}, m.RequiredFeatures())

	value, err := m.Predict(domain.FeatureVector{
		domain.FeatureRevenueLag1:         100,
		domain.FeatureRevenueRollingMean7: 80,
		domain.FeatureIsWeekend:           1,
		domain.FeatureYear:                2011,
	})
	require.NoError(t, err)
	// 50 + 50 + 20 - 20
	assert.Equal(t, 100.0, value)
}

func TestFileLoader_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "Arquivo inexistente", path: filepath.Join(dir, "missing.json")},
		{name: "JSON inválido", path: write("corrupt.json", "{\"intercept\":")},
		{name: "Sem coeficientes", path: write("empty.json", `{"intercept": 1, "coefficients": {}}`)},
		{name: "Feature desconhecida", path: write("unknown.json", `{"intercept": 1, "coefficients": {"temperature": 2}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader(tt.path).Load(context.Background())
			assert.ErrorIs(t, err, ErrLoad)
		})
	}
}

func TestLinearModel_PredictErrors(t *testing.T) {
	m := &LinearModel{
		Intercept:    1,
		Coefficients: map[domain.FeatureName]float64{domain.FeatureRevenue: 1e308},
	}
	require.NoError(t, m.validate())

	_, err := m.Predict(domain.FeatureVector{})
	assert.ErrorIs(t, err, ErrMissingFeature)

	_, err = m.Predict(domain.FeatureVector{domain.FeatureRevenue: 1e308})
	assert.ErrorIs(t, err, ErrNonFiniteOutput)
}

func TestLinearModel_RequiredFeaturesIsACopy(t *testing.T) {
	m := &LinearModel{Coefficients: map[domain.FeatureName]float64{domain.FeatureMonth: 1}}
	require.NoError(t, m.validate())

	features := m.RequiredFeatures()
	features[0] = domain.FeatureYear
	assert.Equal(t, []domain.FeatureName{domain.FeatureMonth}, m.RequiredFeatures())
}
