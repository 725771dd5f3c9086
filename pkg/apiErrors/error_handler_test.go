package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedErr struct {
	code string
}

func (e codedErr) Error() string   { return "falha " + e.code }
func (e codedErr) APICode() string { return e.code }

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrInvalidFormat, http.StatusBadRequest},
		{ErrFeaturesUnavailable, http.StatusNotFound},
		{ErrModelUnavailable, http.StatusServiceUnavailable},
		{ErrPredictionFailed, http.StatusInternalServerError},
		{ErrMetricsPersistence, http.StatusInternalServerError},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{ErrRateLimited, http.StatusTooManyRequests},
		{"XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.code))
		})
	}
}

func TestFromError(t *testing.T) {
	wrapped := fmt.Errorf("contexto: %w", codedErr{code: ErrModelUnavailable})

	apiErr := FromError(wrapped, ErrInternalServer)
	assert.Equal(t, ErrModelUnavailable, apiErr.Code)
	assert.Contains(t, apiErr.Message, "contexto")

	joined := errors.Join(codedErr{code: ErrMetricsPersistence}, codedErr{code: ErrInvalidRequest})
	assert.Equal(t, ErrMetricsPersistence, FromError(joined, ErrInternalServer).Code)

	assert.Equal(t, ErrDatabaseOperation, FromError(errors.New("sem código"), ErrDatabaseOperation).Code)
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)
}

func TestWriteFromError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFromError(rec, codedErr{code: ErrFeaturesUnavailable}, ErrInternalServer)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrFeaturesUnavailable, body.Code)
}
