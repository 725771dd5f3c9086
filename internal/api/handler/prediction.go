package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/predicting"
	"github.com/vfg2006/revenue-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
	"github.com/vfg2006/revenue-forecast-api/pkg/middleware"
)

// CountryAll dispara a previsão em lote para os países configurados
const CountryAll = "all"

const (
	defaultRecentLimit = 20
	maxBodyBytes       = 1 << 20
)

// PredictCountry prevê a receita do país da URL com a linha de features mais recente.
// O valor "all" retorna a previsão de todos os países configurados.
func PredictCountry(service predicting.PredictionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		country := httprouter.ParamsFromContext(ctx).ByName("country")
		middleware.AddLogField(ctx, "country", country)

		if strings.EqualFold(country, CountryAll) {
			batch, err := service.PredictAll(ctx, nil)
			if err != nil {
				log.ForContext(ctx).WithError(err).Error("Erro na previsão em lote")
				apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
				return
			}
			middleware.AddLogField(ctx, "countries", len(batch.Predictions))
			writeJSON(w, http.StatusOK, batch)
			return
		}

		result, err := service.PredictCountry(ctx, country)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"country": country,
				"code":    predicting.ErrorCode(err),
			}).WithError(err).Warn("Previsão do país falhou")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// PredictFromBody prevê a partir de um vetor de features enviado pelo cliente
func PredictFromBody(service predicting.PredictionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PredictionRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		middleware.AddLogField(r.Context(), "country", req.Country)

		result, err := service.PredictRequest(r.Context(), req)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RecentPredictions lista as últimas previsões bem-sucedidas, da mais nova para a mais antiga
func RecentPredictions(service predicting.PredictionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRecentLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"predictions": service.Recent(limit),
		})
	}
}
