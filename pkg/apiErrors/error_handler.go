package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de previsão
	ErrModelUnavailable    = "MDL_001" // Modelo não pôde ser carregado
	ErrPredictionFailed    = "MDL_002" // Modelo falhou ao calcular
	ErrFeaturesUnavailable = "FEA_001" // Sem features para o país
	ErrMetricsPersistence  = "MET_001" // Falha ao gravar métricas

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRateLimited       = "SRV_005" // Limite de requisições excedido
	ErrConflict          = "SRV_006" // Operação já em andamento
	ErrNotFound          = "SRV_007" // Rota não encontrada
	ErrMethodNotAllowed  = "SRV_008" // Método não suportado na rota
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrModelUnavailable:      http.StatusServiceUnavailable,
	ErrPredictionFailed:      http.StatusInternalServerError,
	ErrFeaturesUnavailable:   http.StatusNotFound,
	ErrMetricsPersistence:    http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRateLimited:           http.StatusTooManyRequests,
	ErrConflict:              http.StatusConflict,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	if rec, ok := w.(CodeRecorder); ok {
		rec.RecordErrorCode(code)
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// CodeRecorder é implementado por writers que registram o código de erro da resposta
type CodeRecorder interface {
	RecordErrorCode(code string)
}

// coded é implementado pelos erros de domínio que carregam um código de API
type coded interface {
	error
	APICode() string
}

// WriteFromError escreve um erro de domínio; sem código conhecido, usa fallbackCode
func WriteFromError(w http.ResponseWriter, err error, fallbackCode string) {
	apiErr := FromError(err, fallbackCode)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var c coded
	if errors.As(err, &c) && c.APICode() != "" {
		code = c.APICode()
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
