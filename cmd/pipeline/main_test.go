package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/storage/featuretable"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/pipeline"
)

func writeRetailExport(t *testing.T, days int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n")
	start := time.Date(2010, 12, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		fmt.Fprintf(&b, "%d,85123A,WHITE HANGING HEART,6,%d/%d/%d 08:26,2.55,17850,United Kingdom\n",
			536365+i, int(day.Month()), day.Day(), day.Year())
		// cancelamento: descartado na limpeza
		fmt.Fprintf(&b, "C%d,85123A,WHITE HANGING HEART,-1,%d/%d/%d 09:00,2.55,17850,United Kingdom\n",
			536365+i, int(day.Month()), day.Day(), day.Year())
	}

	path := filepath.Join(t.TempDir(), "online_retail.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunCmd(t *testing.T) {
	t.Setenv("FEATURES_DB_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	input := writeRetailExport(t, 40)
	output := filepath.Join(t.TempDir(), "processed", "features.csv")

	stdout, err := execute(t, "run", "--input", input, "--output", output)
	require.NoError(t, err)

	var report pipeline.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 80, report.RawRows)
	assert.Equal(t, 40, report.Clean.Retained)
	assert.Equal(t, 40, report.Clean.DroppedCancelled)
	assert.Equal(t, 40, report.Days)
	assert.Equal(t, 30, report.WarmupDropped)
	assert.Equal(t, 10, report.FeatureRows)
	assert.False(t, report.Persisted)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 11)
	assert.Equal(t, strings.Join(featuretable.Header(), ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[0], "date,revenue,total_items,total_transactions,unique_customers"))
}

func TestRunCmd_InvalidGapPolicy(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	_, err := execute(t, "run", "--gap-policy", "interpolate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--gap-policy")
}

func TestRunCmd_MissingInput(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	_, err := execute(t, "run",
		"--input", filepath.Join(t.TempDir(), "nao-existe.csv"),
		"--output", filepath.Join(t.TempDir(), "features.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPipelineFatal)
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("AUTH_SECRET", "segredo-de-teste")

	stdout, err := execute(t, "token", "--subject", "deploy", "--role", "operator", "--ttl", "1h")
	require.NoError(t, err)

	auth := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo-de-teste"}})
	claims, err := auth.ValidateToken(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperator, claims.Role)
	assert.Equal(t, "deploy", claims.Subject)
}

func TestMigrateCmd_SQLite(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("METRICS_BACKEND", "sqlite")
	t.Setenv("METRICS_SQLITE_PATH", filepath.Join(t.TempDir(), "metrics.db"))

	stdout, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sqlite3")

	// idempotente
	_, err = execute(t, "migrate")
	require.NoError(t, err)
}
