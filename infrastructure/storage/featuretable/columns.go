package featuretable

import "github.com/vfg2006/revenue-forecast-api/internal/domain"

const ColumnDate = "date"

// Header retorna as colunas da tabela processada na ordem em que são gravadas
func Header() []string {
	header := make([]string, 0, len(domain.FeatureSchema)+1)
	header = append(header, ColumnDate)
	for _, name := range domain.FeatureSchema {
		header = append(header, string(name))
	}
	return header
}
