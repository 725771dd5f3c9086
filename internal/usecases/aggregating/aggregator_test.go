package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

func record(invoice string, ts time.Time, quantity int, price string, customer string) domain.TransactionRecord {
	p := decimal.RequireFromString(price)
	r := domain.TransactionRecord{
		InvoiceID: invoice,
		Timestamp: ts,
		Quantity:  quantity,
		UnitPrice: p,
		Country:   "United Kingdom",
		Amount:    p.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if customer != "" {
		r.CustomerID = &customer
	}
	return r
}

func day(d int, hour int) time.Time {
	return time.Date(2011, 1, d, hour, 0, 0, 0, time.UTC)
}

func TestAggregator_Aggregate(t *testing.T) {
	records := []domain.TransactionRecord{
		record("B", day(2, 9), 1, "10.10", "c2"),
		record("A", day(1, 9), 2, "0.10", "c1"),
		record("A", day(1, 18), 3, "0.20", "c1"),
		record("B2", day(1, 23), 1, "1.00", ""),
		record("C", day(1, 10), 4, "0.05", "c3"),
	}

	agg, err := NewAggregator(domain.GapPolicyPreserve)
	require.NoError(t, err)

	series := agg.Aggregate(context.Background(), records)
	require.Len(t, series, 2)

	first := series[0]
	assert.Equal(t, time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	// 0.20 + 0.60 + 1.00 + 0.20
	assert.Equal(t, 2.0, first.Revenue)
	assert.Equal(t, 10, first.TotalItems)
	assert.Equal(t, 3, first.TotalTransactions)
	assert.Equal(t, 2, first.UniqueCustomers)

	second := series[1]
	assert.Equal(t, time.Date(2011, 1, 2, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Equal(t, 10.1, second.Revenue)
	assert.Equal(t, 1, second.TotalTransactions)
	assert.Equal(t, 1, second.UniqueCustomers)
}

func TestAggregator_GapPolicy(t *testing.T) {
	records := []domain.TransactionRecord{
		record("A", day(1, 9), 1, "5", "c1"),
		record("B", day(4, 9), 1, "7", "c1"),
	}

	tests := []struct {
		name     string
		policy   domain.GapPolicy
		validate func(t *testing.T, series []domain.DailyAggregate)
	}{
		{
			name:   "Preserve mantém apenas os dias com vendas",
			policy: domain.GapPolicyPreserve,
			validate: func(t *testing.T, series []domain.DailyAggregate) {
				require.Len(t, series, 2)
				assert.Equal(t, day(4, 0), series[1].Date)
			},
		},
		{
			name:   "Política vazia assume preserve",
			policy: "",
			validate: func(t *testing.T, series []domain.DailyAggregate) {
				assert.Len(t, series, 2)
			},
		},
		{
			name:   "Zero fill insere os dias sem vendas",
			policy: domain.GapPolicyZeroFill,
			validate: func(t *testing.T, series []domain.DailyAggregate) {
				require.Len(t, series, 4)
				for i, row := range series {
					assert.Equal(t, day(1+i, 0), row.Date)
				}
				assert.Equal(t, 0.0, series[1].Revenue)
				assert.Equal(t, 0, series[2].TotalTransactions)
				assert.Equal(t, 7.0, series[3].Revenue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := NewAggregator(tt.policy)
			require.NoError(t, err)
			tt.validate(t, agg.Aggregate(context.Background(), records))
		})
	}
}

func TestNewAggregator_InvalidPolicy(t *testing.T) {
	_, err := NewAggregator("interpolate")
	assert.Error(t, err)
}

func TestAggregator_EmptyInput(t *testing.T) {
	agg, err := NewAggregator(domain.GapPolicyZeroFill)
	require.NoError(t, err)
	assert.Empty(t, agg.Aggregate(context.Background(), nil))
}

// Expandir cada dia agregado em uma venda sintética e reagregar deve produzir a mesma série
func TestAggregator_Idempotent(t *testing.T) {
	records := []domain.TransactionRecord{
		record("A", day(1, 9), 2, "3.5", "c1"),
		record("B", day(1, 11), 1, "1.5", "c2"),
		record("C", day(3, 9), 4, "2.25", "c1"),
	}

	agg, err := NewAggregator(domain.GapPolicyPreserve)
	require.NoError(t, err)
	first := agg.Aggregate(context.Background(), records)

	expanded := make([]domain.TransactionRecord, 0)
	for _, d := range first {
		for i := 0; i < d.TotalTransactions; i++ {
			customer := ""
			if i < d.UniqueCustomers {
				customer = string(rune('a' + i))
			}
			qty := 0
			amount := decimal.Zero
			if i == 0 {
				qty = d.TotalItems
				amount = decimal.NewFromFloat(d.Revenue)
			}
			r := domain.TransactionRecord{
				InvoiceID: d.Date.Format("2006-01-02") + string(rune('0'+i)),
				Timestamp: d.Date.Add(time.Hour),
				Quantity:  qty,
				Amount:    amount,
			}
			if customer != "" {
				r.CustomerID = &customer
			}
			expanded = append(expanded, r)
		}
	}

	assert.Equal(t, first, agg.Aggregate(context.Background(), expanded))
}
