package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/ingestion"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/storage/featuretable"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/pipeline/mocks"
	"go.uber.org/mock/gomock"
)

// dailyRows gera uma venda por dia com receita 100.0 a partir de 2011-01-01
func dailyRows(days int, country string) []domain.RawTransaction {
	rows := make([]domain.RawTransaction, 0, days)
	start := time.Date(2011, 1, 1, 10, 30, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		rows = append(rows, domain.RawTransaction{
			Line:        i + 2,
			InvoiceID:   fmt.Sprintf("INV%03d", i),
			Quantity:    "4",
			InvoiceDate: start.AddDate(0, 0, i).Format("2006-01-02 15:04:05"),
			UnitPrice:   "25.00",
			CustomerID:  "12345",
			Country:     country,
		})
	}
	return rows
}

func TestRunner_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mocks.NewMockTransactionReader(ctrl)
	writer := mocks.NewMockFeatureWriter(ctrl)
	repo := mocks.NewMockFeatureRepository(ctrl)

	defaults := Options{
		InputPath:  "data/raw/online_retail.csv",
		OutputPath: "data/processed/features.csv",
		GapPolicy:  domain.GapPolicyPreserve,
	}

	tests := []struct {
		name       string
		repository FeatureRepository
		opts       Options
		setup      func()
		validate   func(t *testing.T, report *Report, err error)
	}{
		{
			name:       "Execução completa grava CSV e banco",
			repository: repo,
			setup: func() {
				raw := append(dailyRows(40, "United Kingdom"), domain.RawTransaction{Line: 99, InvoiceID: "C1", Quantity: "-2", InvoiceDate: "2011-01-05 10:00:00", UnitPrice: "3"})
				reader.EXPECT().Read(gomock.Any(), defaults.InputPath).Return(raw, nil)
				gomock.InOrder(
					repo.EXPECT().SaveOrUpdate(gomock.Any(), "", gomock.Len(10)).Return(nil),
					writer.EXPECT().Write(gomock.Any(), defaults.OutputPath, gomock.Len(10)).DoAndReturn(
						func(_ context.Context, _ string, rows []domain.FeatureRow) error {
							for _, row := range rows {
								assert.Equal(t, 100.0, row.RevenueRollingMean30)
								assert.Equal(t, 100.0, row.RevenueLag30)
							}
							return nil
						}),
				)
			},
			validate: func(t *testing.T, report *Report, err error) {
				require.NoError(t, err)
				assert.Equal(t, 41, report.RawRows)
				assert.Equal(t, 40, report.Clean.Retained)
				assert.Equal(t, 1, report.Clean.DroppedCancelled)
				assert.Equal(t, 40, report.Days)
				assert.Equal(t, 30, report.WarmupDropped)
				assert.Equal(t, 10, report.FeatureRows)
				assert.True(t, report.Persisted)
			},
		},
		{
			name: "Sem repositório apenas grava o CSV",
			opts: Options{OutputPath: "out/custom.csv"},
			setup: func() {
				reader.EXPECT().Read(gomock.Any(), defaults.InputPath).Return(dailyRows(31, "France"), nil)
				writer.EXPECT().Write(gomock.Any(), "out/custom.csv", gomock.Len(1)).Return(nil)
			},
			validate: func(t *testing.T, report *Report, err error) {
				require.NoError(t, err)
				assert.Equal(t, "out/custom.csv", report.OutputPath)
				assert.False(t, report.Persisted)
			},
		},
		{
			name:       "Filtro de país",
			repository: repo,
			opts:       Options{Country: "France"},
			setup: func() {
				raw := append(dailyRows(35, "France"), dailyRows(35, "Germany")...)
				reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return(raw, nil)
				writer.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Len(5)).Return(nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any(), "France", gomock.Len(5)).Return(nil)
			},
			validate: func(t *testing.T, report *Report, err error) {
				require.NoError(t, err)
				assert.Equal(t, 35, report.FilteredOut)
				assert.Equal(t, 35, report.Days)
			},
		},
		{
			name: "Entrada ilegível interrompe a execução",
			setup: func() {
				reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: arquivo ausente", domain.ErrPipelineFatal))
			},
			validate: func(t *testing.T, report *Report, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, domain.ErrPipelineFatal)
			},
		},
		{
			name: "Política de lacunas inválida",
			opts: Options{GapPolicy: "linear"},
			setup: func() {},
			validate: func(t *testing.T, report *Report, err error) {
				assert.ErrorIs(t, err, domain.ErrPipelineFatal)
			},
		},
		{
			name:       "Falha ao gravar no banco é propagada sem substituir o CSV",
			repository: repo,
			setup: func() {
				reader.EXPECT().Read(gomock.Any(), gomock.Any()).Return(dailyRows(31, "UK"), nil)
				writer.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, report *Report, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "conexão recusada")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			runner := NewRunner(reader, writer, tt.repository, defaults)
			report, err := runner.Run(context.Background(), tt.opts)
			tt.validate(t, report, err)
		})
	}
}

func TestRunner_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "raw", "online_retail.csv")
	output := filepath.Join(dir, "processed", "features.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(input), 0o755))

	var sb strings.Builder
	sb.WriteString("InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n")
	for _, row := range dailyRows(40, "United Kingdom") {
		fmt.Fprintf(&sb, "%s,85123A,ITEM,%s,%s,%s,%s,%s\n", row.InvoiceID, row.Quantity, row.InvoiceDate, row.UnitPrice, row.CustomerID, row.Country)
	}
	sb.WriteString("536999,22139,BROKEN,abc,2011-01-02 10:00:00,1.00,,United Kingdom\n")
	require.NoError(t, os.WriteFile(input, []byte(sb.String()), 0o644))

	runner := NewRunner(ingestion.NewCSVReader(), featuretable.NewWriter(), nil, Options{
		InputPath:  input,
		OutputPath: output,
	})

	report, err := runner.RunDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Clean.DroppedMalformed)
	assert.Equal(t, 10, report.FeatureRows)

	latest, err := featuretable.NewReader(output).LatestFeatures(context.Background(), "UK")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2011, 2, 9, 0, 0, 0, 0, time.UTC), latest.Date)
	assert.Equal(t, 100.0, latest.Revenue)
	assert.Equal(t, 100.0, latest.RevenueRollingMean30)
}
