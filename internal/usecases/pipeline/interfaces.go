package pipeline

import (
	"context"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

// TransactionReader lê o export bruto de vendas
type TransactionReader interface {
	Read(ctx context.Context, path string) ([]domain.RawTransaction, error)
}

// FeatureWriter grava a tabela de features processada
type FeatureWriter interface {
	Write(ctx context.Context, path string, rows []domain.FeatureRow) error
}

// FeatureRepository guarda as features em banco para consulta pela API
type FeatureRepository interface {
	SaveOrUpdate(ctx context.Context, country string, rows []domain.FeatureRow) error
}
