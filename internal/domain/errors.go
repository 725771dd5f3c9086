package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPipelineFatal indica entrada estruturalmente ilegível (arquivo ausente,
	// colunas obrigatórias faltando). Interrompe a execução do pipeline.
	ErrPipelineFatal = errors.New("erro fatal no pipeline de features")
	// ErrInputRow marca uma linha descartada pelo cleaner. Nunca é propagado.
	ErrInputRow = errors.New("linha de entrada inválida")
)

type DropReason string

const (
	DropMissingField DropReason = "missing_field"
	DropMalformed    DropReason = "malformed"
	DropCancelled    DropReason = "cancelled"
	DropInvalidPrice DropReason = "invalid_price"
)

// InputError descreve por que uma linha foi descartada
type InputError struct {
	Line   int
	Field  string
	Reason DropReason
	Value  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("linha %d: campo %s (%s) valor=%q", e.Line, e.Field, e.Reason, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInputRow
}

// ErrFeaturesNotFound indica que não há tabela de features para o país solicitado
var ErrFeaturesNotFound = errors.New("features não encontradas")
