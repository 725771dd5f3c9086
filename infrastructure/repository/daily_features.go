package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

const (
	dailyFeaturesTable = "daily_features"
	// AllCountries é a chave da série consolidada, usada quando não há série do país
	AllCountries = "ALL"
	// limita os parâmetros por INSERT (SQLite aceita no máximo 32766)
	dailyFeaturesBatchSize = 200
)

type DailyFeatureRepository interface {
	SaveOrUpdate(ctx context.Context, country string, rows []domain.FeatureRow) error
	LatestFeatures(ctx context.Context, country string) (*domain.FeatureRow, error)
}

// TxQueryer é satisfeito por postgres.Conn e pela conexão SQLite
type TxQueryer interface {
	postgres.Queryer
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type dailyFeatureRepository struct {
	db     TxQueryer
	format squirrel.PlaceholderFormat
	now    func() time.Time
}

func NewDailyFeatureRepository(db TxQueryer, format squirrel.PlaceholderFormat) DailyFeatureRepository {
	return &dailyFeatureRepository{
		db:     db,
		format: format,
		now:    time.Now,
	}
}

func dailyFeatureColumns() []string {
	columns := []string{"country", "date"}
	for _, name := range domain.FeatureSchema {
		columns = append(columns, string(name))
	}
	return append(columns, "updated_at")
}

func countryKey(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return AllCountries
	}
	return country
}

// SaveOrUpdate grava todas as linhas numa única transação: ou a execução
// inteira fica visível, ou nenhuma linha muda.
func (r *dailyFeatureRepository) SaveOrUpdate(ctx context.Context, country string, rows []domain.FeatureRow) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return r.upsert(ctx, tx, countryKey(country), rows)
	})
}

func (r *dailyFeatureRepository) upsert(ctx context.Context, q postgres.Queryer, key string, rows []domain.FeatureRow) error {
	columns := dailyFeatureColumns()
	updates := make([]string, 0, len(columns))
	for _, col := range columns[2:] {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	suffix := "ON CONFLICT (country, date) DO UPDATE SET " + strings.Join(updates, ", ")

	updatedAt := r.now().UTC().Format(time.RFC3339Nano)

	for start := 0; start < len(rows); start += dailyFeaturesBatchSize {
		end := min(start+dailyFeaturesBatchSize, len(rows))

		query := squirrel.
			Insert(dailyFeaturesTable).
			Columns(columns...).
			Suffix(suffix).
			PlaceholderFormat(r.format)

		for _, row := range rows[start:end] {
			values := make([]any, 0, len(columns))
			values = append(values, key, row.Date.Format(time.DateOnly))
			vector := row.Vector()
			for _, name := range domain.FeatureSchema {
				values = append(values, vector[name])
			}
			values = append(values, updatedAt)
			query = query.Values(values...)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção (linhas %d-%d): %w", start, end-1, err)
		}
	}

	return nil
}

// LatestFeatures retorna a linha mais recente do país, ou da série consolidada
// quando o país não tem série própria.
func (r *dailyFeatureRepository) LatestFeatures(ctx context.Context, country string) (*domain.FeatureRow, error) {
	keys := []string{countryKey(country)}
	if keys[0] != AllCountries {
		keys = append(keys, AllCountries)
	}

	for _, key := range keys {
		row, err := r.latest(ctx, key)
		if err != nil {
			return nil, err
		}
		if row != nil {
			return row, nil
		}
	}

	return nil, fmt.Errorf("%w: país %s", domain.ErrFeaturesNotFound, countryKey(country))
}

func (r *dailyFeatureRepository) latest(ctx context.Context, key string) (*domain.FeatureRow, error) {
	columns := dailyFeatureColumns()
	// sem country e updated_at
	selected := columns[1 : len(columns)-1]

	query, args, err := squirrel.
		Select(selected...).
		From(dailyFeaturesTable).
		Where(squirrel.Eq{"country": key}).
		OrderBy("date DESC").
		Limit(1).
		PlaceholderFormat(r.format).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rawDate string
	values := make([]float64, len(domain.FeatureSchema))
	dest := make([]any, 0, len(selected))
	dest = append(dest, &rawDate)
	for i := range values {
		dest = append(dest, &values[i])
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar features: %w", err)
	}

	date, err := time.Parse(time.DateOnly, rawDate)
	if err != nil {
		return nil, fmt.Errorf("data inválida em daily_features (%q): %w", rawDate, err)
	}

	vector := make(domain.FeatureVector, len(values))
	for i, name := range domain.FeatureSchema {
		vector[name] = values[i]
	}

	row := domain.FeatureRowFromVector(date, vector)
	return &row, nil
}
