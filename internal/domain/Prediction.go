package domain

import "time"

// PredictionRequest é o corpo aceito por POST /v1/predict
type PredictionRequest struct {
	Country  string             `json:"country"`
	Date     string             `json:"date,omitempty"`
	Features map[string]float64 `json:"features"`
}

type PredictionResult struct {
	ID               string    `json:"id"`
	Country          string    `json:"country"`
	PredictedRevenue float64   `json:"predicted_revenue"`
	ModelVersion     string    `json:"model_version,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// CountryPrediction é o resultado de um país dentro de uma previsão em lote.
// Exatamente um entre Result e Error vem preenchido.
type CountryPrediction struct {
	Country string            `json:"country"`
	Result  *PredictionResult `json:"result,omitempty"`
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
}

type BatchPrediction struct {
	Predictions []CountryPrediction `json:"predictions"`
}
