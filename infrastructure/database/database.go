package database

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database/sqlite"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/migration"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
)

// Handle é a conexão aberta junto com o formato de placeholder do dialeto
type Handle struct {
	Conn   postgres.Conn
	Format squirrel.PlaceholderFormat
	Driver string
}

// Required indica se a configuração precisa de banco: métricas fora de arquivo
// ou features gravadas em tabela.
func Required(cfg *config.Config) bool {
	return cfg.Metrics.Backend != config.MetricsBackendFile || cfg.Features.DBEnabled
}

// Open conecta no SQLite quando METRICS_BACKEND=sqlite e no Postgres nos demais
// casos, e aplica o schema.
func Open(ctx context.Context, cfg *config.Config) (*Handle, error) {
	var handle *Handle

	if cfg.Metrics.Backend == config.MetricsBackendSQLite {
		conn, err := sqlite.Open(ctx, cfg.Metrics.SQLitePath)
		if err != nil {
			return nil, err
		}
		handle = &Handle{Conn: conn, Format: squirrel.Question, Driver: "sqlite3"}
	} else {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar no Postgres: %w", err)
		}
		handle = &Handle{Conn: conn, Format: squirrel.Dollar, Driver: "postgres"}
	}

	if err := migration.Apply(ctx, handle.Conn); err != nil {
		handle.Conn.Close()
		return nil, fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	logrus.WithField("driver", handle.Driver).Info("Banco de dados conectado")
	return handle, nil
}
