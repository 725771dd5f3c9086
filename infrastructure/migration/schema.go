// Package migration cria as tabelas usadas pelos repositórios.
// O DDL é compatível com Postgres e SQLite.
package migration

import (
	"context"
	"fmt"

	"github.com/vfg2006/revenue-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

var statements = []struct {
	name string
	ddl  string
}{
	{
		name: "prediction_metrics",
		ddl: `CREATE TABLE IF NOT EXISTS prediction_metrics (
			id                    INTEGER PRIMARY KEY,
			predictions_count     BIGINT NOT NULL DEFAULT 0,
			average_response_time DOUBLE PRECISION NOT NULL DEFAULT 0,
			error_rate            DOUBLE PRECISION NOT NULL DEFAULT 0,
			last_update           TEXT NOT NULL
		)`,
	},
	{
		name: "daily_features",
		ddl: `CREATE TABLE IF NOT EXISTS daily_features (
			country                      TEXT NOT NULL,
			date                         TEXT NOT NULL,
			revenue                      DOUBLE PRECISION NOT NULL,
			total_items                  INTEGER NOT NULL,
			total_transactions           INTEGER NOT NULL,
			unique_customers             INTEGER NOT NULL,
			year                         INTEGER NOT NULL,
			month                        INTEGER NOT NULL,
			day_of_week                  INTEGER NOT NULL,
			day_of_month                 INTEGER NOT NULL,
			is_weekend                   INTEGER NOT NULL,
			revenue_lag_1                DOUBLE PRECISION NOT NULL,
			revenue_lag_7                DOUBLE PRECISION NOT NULL,
			revenue_lag_30               DOUBLE PRECISION NOT NULL,
			transactions_lag_1           DOUBLE PRECISION NOT NULL,
			transactions_lag_7           DOUBLE PRECISION NOT NULL,
			transactions_lag_30          DOUBLE PRECISION NOT NULL,
			revenue_rolling_mean_7       DOUBLE PRECISION NOT NULL,
			revenue_rolling_mean_30      DOUBLE PRECISION NOT NULL,
			transactions_rolling_mean_7  DOUBLE PRECISION NOT NULL,
			transactions_rolling_mean_30 DOUBLE PRECISION NOT NULL,
			updated_at                   TEXT NOT NULL,
			PRIMARY KEY (country, date)
		)`,
	},
}

// Apply cria as tabelas que ainda não existem. É idempotente.
func Apply(ctx context.Context, db postgres.Queryer) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("erro ao criar tabela %s: %w", stmt.name, err)
		}
		log.ForContext(ctx).WithField("table", stmt.name).Debug("Tabela verificada")
	}
	return nil
}
