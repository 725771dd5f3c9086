package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

const (
	predictionMetricsTable = "prediction_metrics"
	// o snapshot é global ao processo: uma única linha
	predictionMetricsRowID = 1
)

type PredictionMetricsRepository interface {
	Load(ctx context.Context) (*domain.MetricsSnapshot, error)
	Save(ctx context.Context, snapshot domain.MetricsSnapshot) error
}

type predictionMetricsRepository struct {
	db     postgres.Queryer
	format squirrel.PlaceholderFormat
}

// NewPredictionMetricsRepository recebe o formato de placeholder do banco:
// squirrel.Dollar para Postgres e squirrel.Question para SQLite.
func NewPredictionMetricsRepository(db postgres.Queryer, format squirrel.PlaceholderFormat) PredictionMetricsRepository {
	return &predictionMetricsRepository{
		db:     db,
		format: format,
	}
}

func (r *predictionMetricsRepository) Load(ctx context.Context) (*domain.MetricsSnapshot, error) {
	query, args, err := squirrel.
		Select("predictions_count", "average_response_time", "error_rate", "last_update").
		From(predictionMetricsTable).
		Where(squirrel.Eq{"id": predictionMetricsRowID}).
		PlaceholderFormat(r.format).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		snapshot   domain.MetricsSnapshot
		lastUpdate string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.PredictionsCount,
		&snapshot.AverageResponseTime,
		&snapshot.ErrorRate,
		&lastUpdate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar métricas: %w", err)
	}

	snapshot.LastUpdate, err = time.Parse(time.RFC3339Nano, lastUpdate)
	if err != nil {
		return nil, fmt.Errorf("last_update inválido (%q): %w", lastUpdate, err)
	}

	return &snapshot, nil
}

func (r *predictionMetricsRepository) Save(ctx context.Context, snapshot domain.MetricsSnapshot) error {
	query, args, err := squirrel.
		Insert(predictionMetricsTable).
		Columns("id", "predictions_count", "average_response_time", "error_rate", "last_update").
		Values(
			predictionMetricsRowID,
			snapshot.PredictionsCount,
			snapshot.AverageResponseTime,
			snapshot.ErrorRate,
			snapshot.LastUpdate.UTC().Format(time.RFC3339Nano),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			predictions_count = EXCLUDED.predictions_count,
			average_response_time = EXCLUDED.average_response_time,
			error_rate = EXCLUDED.error_rate,
			last_update = EXCLUDED.last_update`).
		PlaceholderFormat(r.format).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar métricas: %w", err)
	}

	return nil
}
