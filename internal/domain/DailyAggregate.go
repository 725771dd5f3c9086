package domain

import "time"

// DailyAggregate consolida as vendas de um único dia
type DailyAggregate struct {
	Date              time.Time `json:"date"`
	Revenue           float64   `json:"revenue"`
	TotalItems        int       `json:"total_items"`
	TotalTransactions int       `json:"total_transactions"`
	UniqueCustomers   int       `json:"unique_customers"`
}

// GapPolicy define o tratamento de dias sem vendas na série diária
type GapPolicy string

const (
	// GapPolicyPreserve mantém apenas os dias presentes na origem. Lags e médias
	// móveis passam a contar linhas, não dias corridos.
	GapPolicyPreserve GapPolicy = "preserve"
	// GapPolicyZeroFill reindexa o intervalo completo com dias zerados
	GapPolicyZeroFill GapPolicy = "zero_fill"
)

func (p GapPolicy) IsValid() bool {
	return p == GapPolicyPreserve || p == GapPolicyZeroFill
}
