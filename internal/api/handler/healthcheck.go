package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/revenue-forecast-api/internal/usecases/predicting"
)

type healthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	ModelLoaded bool      `json:"model_loaded"`
}

// HealthcheckHandler responde sempre 200; model_loaded indica se o modelo já foi carregado
func HealthcheckHandler(service predicting.PredictionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:      "healthy",
			Timestamp:   time.Now().UTC(),
			ModelLoaded: service.ModelLoaded(),
		})
	})
}
