package featuring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

// Deslocamentos dos lags e tamanhos das médias móveis
const (
	lagDaily   = 1
	lagWeekly  = 7
	lagMonthly = 30

	windowWeekly  = 7
	windowMonthly = 30
)

var (
	lags    = []int{lagDaily, lagWeekly, lagMonthly}
	windows = []int{windowWeekly, windowMonthly}
)

// ErrUnorderedSeries indica série diária fora de ordem ou com datas repetidas
var ErrUnorderedSeries = errors.New("série diária deve estar em ordem estritamente crescente de data")

type Result struct {
	Rows          []domain.FeatureRow
	WarmupDropped int
}

// WarmupSize é a quantidade de linhas iniciais sem histórico suficiente.
// Lag k exige i >= k e janela w exige i >= w-1, então o maior dos dois manda.
func WarmupSize() int {
	warmup := 0
	for _, k := range lags {
		warmup = max(warmup, k)
	}
	for _, w := range windows {
		warmup = max(warmup, w-1)
	}
	return warmup
}

// Synthesize deriva as features de calendário, lags e médias móveis.
// Linhas com qualquer campo indefinido são descartadas.
func Synthesize(ctx context.Context, series []domain.DailyAggregate) (*Result, error) {
	for i := 1; i < len(series); i++ {
		if !series[i].Date.After(series[i-1].Date) {
			return nil, fmt.Errorf("%w: posição %d (%s)", ErrUnorderedSeries, i, series[i].Date.Format(time.DateOnly))
		}
	}

	revenue := make([]float64, len(series))
	transactions := make([]float64, len(series))
	for i, d := range series {
		revenue[i] = d.Revenue
		transactions[i] = float64(d.TotalTransactions)
	}

	warmup := WarmupSize()
	rows := make([]domain.FeatureRow, 0, max(len(series)-warmup, 0))

	for i := warmup; i < len(series); i++ {
		row := calendarRow(series[i])

		row.RevenueLag1 = revenue[i-lagDaily]
		row.RevenueLag7 = revenue[i-lagWeekly]
		row.RevenueLag30 = revenue[i-lagMonthly]
		row.TransactionsLag1 = transactions[i-lagDaily]
		row.TransactionsLag7 = transactions[i-lagWeekly]
		row.TransactionsLag30 = transactions[i-lagMonthly]

		row.RevenueRollingMean7 = windowMean(revenue, i, windowWeekly)
		row.RevenueRollingMean30 = windowMean(revenue, i, windowMonthly)
		row.TransactionsRollingMean7 = windowMean(transactions, i, windowWeekly)
		row.TransactionsRollingMean30 = windowMean(transactions, i, windowMonthly)

		rows = append(rows, row)
	}

	result := &Result{
		Rows:          rows,
		WarmupDropped: len(series) - len(rows),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"days":           len(series),
		"rows":           len(result.Rows),
		"warmup_dropped": result.WarmupDropped,
	}).Info("Síntese de features concluída")

	return result, nil
}

// calendarRow preenche os campos derivados apenas da data
func calendarRow(d domain.DailyAggregate) domain.FeatureRow {
	// time.Weekday começa no domingo; aqui segunda = 0
	dayOfWeek := (int(d.Date.Weekday()) + 6) % 7

	return domain.FeatureRow{
		DailyAggregate: d,
		Year:           d.Date.Year(),
		Month:          int(d.Date.Month()),
		DayOfWeek:      dayOfWeek,
		DayOfMonth:     d.Date.Day(),
		IsWeekend:      dayOfWeek >= 5,
	}
}

// windowMean calcula a média de values[i-w+1..i]. Quem chama garante i >= w-1.
func windowMean(values []float64, i, w int) float64 {
	sum := 0.0
	for _, v := range values[i-w+1 : i+1] {
		sum += v
	}
	return sum / float64(w)
}
