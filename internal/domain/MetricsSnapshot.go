package domain

import "time"

// MetricsSnapshot é o estado agregado das previsões servidas.
// Os nomes dos campos JSON fazem parte do formato persistido.
type MetricsSnapshot struct {
	PredictionsCount    int64     `json:"predictions_count"`
	AverageResponseTime float64   `json:"average_response_time"` // ms
	ErrorRate           float64   `json:"error_rate"`
	LastUpdate          time.Time `json:"last_update"`
}
