package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

// MetricsReader devolve o snapshot atual das métricas de previsão
type MetricsReader interface {
	Snapshot(ctx context.Context) (domain.MetricsSnapshot, error)
}

func GetMetrics(reader MetricsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := reader.Snapshot(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao ler métricas")
			apiErrors.WriteFromError(w, err, apiErrors.ErrMetricsPersistence)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
