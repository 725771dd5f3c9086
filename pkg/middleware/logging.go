package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/vfg2006/revenue-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

// CorrelationHeader devolve ao cliente o ID de correlação da requisição
const CorrelationHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

type requestFieldsKey struct{}

// requestFields acumula os campos que os handlers anexam ao log da requisição
type requestFields struct {
	mu     sync.Mutex
	fields log.Fields
}

// AddLogField anexa key ao log de finalização da requisição (ex.: o país
// consultado). Fora do LoggingMiddleware não faz nada.
func AddLogField(ctx context.Context, key string, value any) {
	rf, ok := ctx.Value(requestFieldsKey{}).(*requestFields)
	if !ok {
		return
	}

	rf.mu.Lock()
	rf.fields[key] = value
	rf.mu.Unlock()
}

func (rf *requestFields) merge(into log.Fields) log.Fields {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	for k, v := range rf.fields {
		into[k] = v
	}
	return into
}

// LoggingMiddleware registra cada requisição com o status, a duração, o código
// de erro da API e os campos de domínio anexados pelo handler.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			rf := &requestFields{fields: log.Fields{}}
			ctx = context.WithValue(ctx, requestFieldsKey{}, rf)
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": clientIP(r),
				"user_agent":  r.UserAgent(),
			}).Debug("Requisição iniciada")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)

			fields := rf.merge(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})
			if lrw.errorCode != "" {
				fields["error_code"] = lrw.errorCode
			}

			logger := log.ForContext(ctx).WithFields(fields)

			switch {
			case lrw.statusCode >= 500:
				logger.Error("Requisição finalizada com erro")
			case lrw.statusCode >= 400:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada com sucesso")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

// loggingResponseWriter captura o status e o código de erro da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	errorCode  string
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// RecordErrorCode implementa apiErrors.CodeRecorder
func (lrw *loggingResponseWriter) RecordErrorCode(code string) {
	lrw.errorCode = code
}

// LogPanicMiddleware recupera panics e responde SRV_001
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic_error": rec,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(debug.Stack()),
					}).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
