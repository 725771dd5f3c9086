package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FeatureName identifica uma coluna numérica da tabela de features
type FeatureName string

const (
	FeatureRevenue                   FeatureName = "revenue"
	FeatureTotalItems                FeatureName = "total_items"
	FeatureTotalTransactions         FeatureName = "total_transactions"
	FeatureUniqueCustomers           FeatureName = "unique_customers"
	FeatureYear                      FeatureName = "year"
	FeatureMonth                     FeatureName = "month"
	FeatureDayOfWeek                 FeatureName = "day_of_week"
	FeatureDayOfMonth                FeatureName = "day_of_month"
	FeatureIsWeekend                 FeatureName = "is_weekend"
	FeatureRevenueLag1               FeatureName = "revenue_lag_1"
	FeatureRevenueLag7               FeatureName = "revenue_lag_7"
	FeatureRevenueLag30              FeatureName = "revenue_lag_30"
	FeatureTransactionsLag1          FeatureName = "transactions_lag_1"
	FeatureTransactionsLag7          FeatureName = "transactions_lag_7"
	FeatureTransactionsLag30         FeatureName = "transactions_lag_30"
	FeatureRevenueRollingMean7       FeatureName = "revenue_rolling_mean_7"
	FeatureRevenueRollingMean30      FeatureName = "revenue_rolling_mean_30"
	FeatureTransactionsRollingMean7  FeatureName = "transactions_rolling_mean_7"
	FeatureTransactionsRollingMean30 FeatureName = "transactions_rolling_mean_30"
)

// FeatureSchema lista as features numéricas na ordem das colunas da tabela processada
var FeatureSchema = []FeatureName{
	FeatureRevenue,
	FeatureTotalItems,
	FeatureTotalTransactions,
	FeatureUniqueCustomers,
	FeatureYear,
	FeatureMonth,
	FeatureDayOfWeek,
	FeatureDayOfMonth,
	FeatureIsWeekend,
	FeatureRevenueLag1,
	FeatureRevenueLag7,
	FeatureRevenueLag30,
	FeatureTransactionsLag1,
	FeatureTransactionsLag7,
	FeatureTransactionsLag30,
	FeatureRevenueRollingMean7,
	FeatureRevenueRollingMean30,
	FeatureTransactionsRollingMean7,
	FeatureTransactionsRollingMean30,
}

var knownFeatures = func() map[FeatureName]struct{} {
	m := make(map[FeatureName]struct{}, len(FeatureSchema))
	for _, name := range FeatureSchema {
		m[name] = struct{}{}
	}
	return m
}()

// IsKnownFeature informa se o nome pertence ao schema fixo de features
func IsKnownFeature(name FeatureName) bool {
	_, ok := knownFeatures[name]
	return ok
}

// FeatureVector é o conjunto de features enviado ao modelo
type FeatureVector map[FeatureName]float64

// Missing retorna, ordenadas, as features exigidas que não estão no vetor
func (v FeatureVector) Missing(required []FeatureName) []FeatureName {
	missing := make([]FeatureName, 0)
	for _, name := range required {
		if _, ok := v[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

// ParseFeatureVector converte o payload livre da requisição em um FeatureVector,
// rejeitando qualquer chave fora do schema.
func ParseFeatureVector(raw map[string]float64) (FeatureVector, error) {
	vector := make(FeatureVector, len(raw))
	unknown := make([]string, 0)

	for key, value := range raw {
		name := FeatureName(key)
		if !IsKnownFeature(name) {
			unknown = append(unknown, key)
			continue
		}
		vector[name] = value
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("features desconhecidas: %s", strings.Join(unknown, ", "))
	}

	return vector, nil
}

// FeatureRow é uma linha da tabela de features pronta para o modelo.
// Só existe quando todos os lags e médias móveis estão definidos.
type FeatureRow struct {
	DailyAggregate

	Year       int  `json:"year"`
	Month      int  `json:"month"`
	DayOfWeek  int  `json:"day_of_week"` // 0 = segunda ... 6 = domingo
	DayOfMonth int  `json:"day_of_month"`
	IsWeekend  bool `json:"is_weekend"`

	RevenueLag1      float64 `json:"revenue_lag_1"`
	RevenueLag7      float64 `json:"revenue_lag_7"`
	RevenueLag30     float64 `json:"revenue_lag_30"`
	TransactionsLag1 float64 `json:"transactions_lag_1"`
	TransactionsLag7 float64 `json:"transactions_lag_7"`
	// TransactionsLag30 fecha a janela mais longa e define o tamanho do warm-up
	TransactionsLag30 float64 `json:"transactions_lag_30"`

	RevenueRollingMean7       float64 `json:"revenue_rolling_mean_7"`
	RevenueRollingMean30      float64 `json:"revenue_rolling_mean_30"`
	TransactionsRollingMean7  float64 `json:"transactions_rolling_mean_7"`
	TransactionsRollingMean30 float64 `json:"transactions_rolling_mean_30"`
}

// Vector converte a linha no vetor de features usado pelo modelo
func (r FeatureRow) Vector() FeatureVector {
	isWeekend := 0.0
	if r.IsWeekend {
		isWeekend = 1
	}

	return FeatureVector{
		FeatureRevenue:                   r.Revenue,
		FeatureTotalItems:                float64(r.TotalItems),
		FeatureTotalTransactions:         float64(r.TotalTransactions),
		FeatureUniqueCustomers:           float64(r.UniqueCustomers),
		FeatureYear:                      float64(r.Year),
		FeatureMonth:                     float64(r.Month),
		FeatureDayOfWeek:                 float64(r.DayOfWeek),
		FeatureDayOfMonth:                float64(r.DayOfMonth),
		FeatureIsWeekend:                 isWeekend,
		FeatureRevenueLag1:               r.RevenueLag1,
		FeatureRevenueLag7:               r.RevenueLag7,
		FeatureRevenueLag30:              r.RevenueLag30,
		FeatureTransactionsLag1:          r.TransactionsLag1,
		FeatureTransactionsLag7:          r.TransactionsLag7,
		FeatureTransactionsLag30:         r.TransactionsLag30,
		FeatureRevenueRollingMean7:       r.RevenueRollingMean7,
		FeatureRevenueRollingMean30:      r.RevenueRollingMean30,
		FeatureTransactionsRollingMean7:  r.TransactionsRollingMean7,
		FeatureTransactionsRollingMean30: r.TransactionsRollingMean30,
	}
}

// FeatureRowFromVector reconstrói uma linha a partir da data e do vetor de features
func FeatureRowFromVector(date time.Time, v FeatureVector) FeatureRow {
	return FeatureRow{
		DailyAggregate: DailyAggregate{
			Date:              date,
			Revenue:           v[FeatureRevenue],
			TotalItems:        int(v[FeatureTotalItems]),
			TotalTransactions: int(v[FeatureTotalTransactions]),
			UniqueCustomers:   int(v[FeatureUniqueCustomers]),
		},
		Year:                      int(v[FeatureYear]),
		Month:                     int(v[FeatureMonth]),
		DayOfWeek:                 int(v[FeatureDayOfWeek]),
		DayOfMonth:                int(v[FeatureDayOfMonth]),
		IsWeekend:                 v[FeatureIsWeekend] != 0,
		RevenueLag1:               v[FeatureRevenueLag1],
		RevenueLag7:               v[FeatureRevenueLag7],
		RevenueLag30:              v[FeatureRevenueLag30],
		TransactionsLag1:          v[FeatureTransactionsLag1],
		TransactionsLag7:          v[FeatureTransactionsLag7],
		TransactionsLag30:         v[FeatureTransactionsLag30],
		RevenueRollingMean7:       v[FeatureRevenueRollingMean7],
		RevenueRollingMean30:      v[FeatureRevenueRollingMean30],
		TransactionsRollingMean7:  v[FeatureTransactionsRollingMean7],
		TransactionsRollingMean30: v[FeatureTransactionsRollingMean30],
	}
}
