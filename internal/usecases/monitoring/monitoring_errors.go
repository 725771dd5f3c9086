package monitoring

import (
	"errors"
	"fmt"
)

// ErrMetricsPersistence indica falha ao gravar ou carregar o snapshot
var ErrMetricsPersistence = errors.New("erro ao persistir métricas")

const CodeMetricsPersistence = "MET_001"

// MetricsError carrega o código de API junto com a causa
type MetricsError struct {
	Err     error
	Code    string
	Details string
}

func (e *MetricsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

func (e *MetricsError) APICode() string {
	return e.Code
}

func newPersistenceError(cause error) *MetricsError {
	return &MetricsError{
		Err:  fmt.Errorf("%w: %w", ErrMetricsPersistence, cause),
		Code: CodeMetricsPersistence,
	}
}
