package featuretable

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

func sampleRows() []domain.FeatureRow {
	return []domain.FeatureRow{
		{
			DailyAggregate: domain.DailyAggregate{
				Date:              time.Date(2011, 2, 2, 0, 0, 0, 0, time.UTC),
				Revenue:           100.5,
				TotalItems:        10,
				TotalTransactions: 3,
				UniqueCustomers:   2,
			},
			Year: 2011, Month: 2, DayOfWeek: 2, DayOfMonth: 2,
			RevenueLag1: 90, RevenueLag7: 80, RevenueLag30: 70.25,
			TransactionsLag1: 3, TransactionsLag7: 2, TransactionsLag30: 1,
			RevenueRollingMean7: 95.125, RevenueRollingMean30: 88,
			TransactionsRollingMean7: 2.5, TransactionsRollingMean30: 1.75,
		},
		{
			DailyAggregate: domain.DailyAggregate{
				Date:              time.Date(2011, 2, 5, 0, 0, 0, 0, time.UTC),
				Revenue:           0.1,
				TotalItems:        1,
				TotalTransactions: 1,
			},
			Year: 2011, Month: 2, DayOfWeek: 5, DayOfMonth: 5, IsWeekend: true,
			RevenueLag1: 100.5, RevenueLag7: 60, RevenueLag30: 50,
			TransactionsLag1: 3, TransactionsLag7: 4, TransactionsLag30: 5,
			RevenueRollingMean7: 70.5, RevenueRollingMean30: 80.75,
			TransactionsRollingMean7: 3, TransactionsRollingMean30: 2,
		},
	}
}

func TestHeader(t *testing.T) {
	expected := "date,revenue,total_items,total_transactions,unique_customers,year,month,day_of_week,day_of_month,is_weekend," +
		"revenue_lag_1,revenue_lag_7,revenue_lag_30,transactions_lag_1,transactions_lag_7,transactions_lag_30," +
		"revenue_rolling_mean_7,revenue_rolling_mean_30,transactions_rolling_mean_7,transactions_rolling_mean_30"
	assert.Equal(t, expected, strings.Join(Header(), ","))
}

func TestEncode_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRows()))

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "feature_table", buf.Bytes())
}

func TestWriter_WriteCreatesDirectoryAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "processed", "features.csv")

	require.NoError(t, NewWriter().Write(context.Background(), path, sampleRows()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := Decode(f)
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), rows)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "arquivo temporário não deve sobrar")
}

func TestReader_LatestFeatures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "features.csv")
	writer := NewWriter()
	require.NoError(t, writer.Write(context.Background(), path, sampleRows()))

	reader := NewReader(path)

	row, err := reader.LatestFeatures(context.Background(), "US")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, 2, 5, 0, 0, 0, 0, time.UTC), row.Date)
	assert.True(t, row.IsWeekend)

	// arquivo específico do país tem prioridade
	deRows := sampleRows()[:1]
	require.NoError(t, writer.Write(context.Background(), filepath.Join(dir, "features_DE.csv"), deRows))

	row, err = reader.LatestFeatures(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, 2, 2, 0, 0, 0, 0, time.UTC), row.Date)

	row, err = reader.LatestFeatures(context.Background(), "FR")
	require.NoError(t, err)
	assert.Equal(t, 0.1, row.Revenue)
}

func TestReader_ReloadsWhenFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.csv")
	writer := NewWriter()
	require.NoError(t, writer.Write(context.Background(), path, sampleRows()[:1]))

	reader := NewReader(path)
	row, err := reader.LatestFeatures(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 100.5, row.Revenue)

	require.NoError(t, writer.Write(context.Background(), path, sampleRows()))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	row, err = reader.LatestFeatures(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0.1, row.Revenue)
}

func TestReader_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "Arquivo inexistente",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "features.csv")
			},
		},
		{
			name: "Tabela apenas com cabeçalho",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "features.csv")
				require.NoError(t, NewWriter().Write(context.Background(), path, nil))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(tt.setup(t)).LatestFeatures(context.Background(), "US")
			assert.ErrorIs(t, err, domain.ErrFeaturesNotFound)
		})
	}
}

func TestDecode_MissingColumn(t *testing.T) {
	_, err := Decode(strings.NewReader("date,revenue\n2011-01-01,1\n"))
	assert.Error(t, err)
}
