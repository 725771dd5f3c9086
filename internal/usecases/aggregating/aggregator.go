package aggregating

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

type dayBucket struct {
	revenue   decimal.Decimal
	items     int
	invoices  map[string]struct{}
	customers map[string]struct{}
}

type Aggregator struct {
	policy domain.GapPolicy
}

func NewAggregator(policy domain.GapPolicy) (*Aggregator, error) {
	if policy == "" {
		policy = domain.GapPolicyPreserve
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("política de lacunas inválida: %q", policy)
	}

	return &Aggregator{policy: policy}, nil
}

// Aggregate agrupa as vendas limpas por data de calendário.
// O resultado sai em ordem estritamente crescente de data.
func (a *Aggregator) Aggregate(ctx context.Context, records []domain.TransactionRecord) []domain.DailyAggregate {
	buckets := make(map[time.Time]*dayBucket)

	for _, r := range records {
		day := r.Date()
		b, ok := buckets[day]
		if !ok {
			b = &dayBucket{
				invoices:  make(map[string]struct{}),
				customers: make(map[string]struct{}),
			}
			buckets[day] = b
		}

		b.revenue = b.revenue.Add(r.Amount)
		b.items += r.Quantity
		b.invoices[r.InvoiceID] = struct{}{}
		if r.CustomerID != nil {
			b.customers[*r.CustomerID] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	series := make([]domain.DailyAggregate, 0, len(dates))
	for _, day := range dates {
		b := buckets[day]
		series = append(series, domain.DailyAggregate{
			Date:              day,
			Revenue:           b.revenue.InexactFloat64(),
			TotalItems:        b.items,
			TotalTransactions: len(b.invoices),
			UniqueCustomers:   len(b.customers),
		})
	}

	filled := 0
	if a.policy == domain.GapPolicyZeroFill {
		before := len(series)
		series = fillGaps(series)
		filled = len(series) - before
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"days":        len(series),
		"gap_policy":  a.policy,
		"filled_days": filled,
	}).Info("Agregação diária concluída")

	return series
}

// fillGaps reindexa a série no intervalo completo, inserindo dias sem vendas zerados
func fillGaps(series []domain.DailyAggregate) []domain.DailyAggregate {
	if len(series) < 2 {
		return series
	}

	first := series[0].Date
	last := series[len(series)-1].Date
	days := int(last.Sub(first).Hours()/24) + 1

	out := make([]domain.DailyAggregate, 0, days)
	idx := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if idx < len(series) && series[idx].Date.Equal(day) {
			out = append(out, series[idx])
			idx++
			continue
		}
		out = append(out, domain.DailyAggregate{Date: day})
	}

	return out
}
