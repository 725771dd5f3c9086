package predicting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de previsão
var (
	// Erros de validação
	ErrInvalidFeatures = errors.New("features inválidas para o modelo")
	ErrInvalidCountry  = errors.New("país inválido")

	// Erros de modelo
	ErrModelUnavailable = errors.New("modelo indisponível")
	ErrPredictionFailed = errors.New("falha ao calcular a previsão")

	// Erros de dados
	ErrFeaturesUnavailable = errors.New("features indisponíveis para o país")
)

// Códigos de erro expostos pela API
const (
	CodeInvalidFeatures     = "VAL_001"
	CodeInvalidCountry      = "VAL_002"
	CodeModelUnavailable    = "MDL_001"
	CodePredictionFailed    = "MDL_002"
	CodeFeaturesUnavailable = "FEA_001"
	CodeMetricsPersistence  = "MET_001"
)

// PredictionError é um erro com contexto adicional para previsões
type PredictionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Country string // País da previsão (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *PredictionError) Error() string {
	msg := e.Err.Error()
	if e.Country != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Country)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

func (e *PredictionError) APICode() string {
	return e.Code
}

func NewPredictionError(err error, code, country, details string) *PredictionError {
	return &PredictionError{
		Err:     err,
		Code:    code,
		Country: country,
		Details: details,
	}
}

// ErrorCode retorna o código de API associado ao erro, ou "" se não houver
func ErrorCode(err error) string {
	var predErr *PredictionError
	if errors.As(err, &predErr) {
		return predErr.Code
	}
	return ""
}
