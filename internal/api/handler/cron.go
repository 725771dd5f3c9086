package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-forecast-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFeaturePipeline = "feature-pipeline"
)

// CronJob é um agendador que aceita execução manual
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	FeaturePipelineSyncService CronJob
}

func (s CronJobServices) byType(cronType string) CronJob {
	switch cronType {
	case CronJobTypeFeaturePipeline:
		return s.FeaturePipelineSyncService
	default:
		return nil
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		middleware.AddLogField(r.Context(), "cron_type", cronType)
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job := services.byType(cronType)
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: feature-pipeline", nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já está em execução", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.FeaturePipelineSyncService != nil {
			status[CronJobTypeFeaturePipeline] = services.FeaturePipelineSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
