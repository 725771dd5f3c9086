package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/aggregating"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/cleaning"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/featuring"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

type Options struct {
	InputPath         string
	OutputPath        string
	GapPolicy         domain.GapPolicy
	RequireCustomerID bool
	// Country restringe as vendas a um país do export; vazio usa todas
	Country string
}

// OptionsFromConfig monta as opções padrão a partir da configuração da aplicação
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InputPath:         cfg.Features.RawDataFile,
		OutputPath:        cfg.Features.File,
		GapPolicy:         domain.GapPolicy(cfg.Features.GapPolicy),
		RequireCustomerID: cfg.Features.RequireCustomerID,
	}
}

// Report resume uma execução do pipeline
type Report struct {
	InputPath     string               `json:"input_path"`
	OutputPath    string               `json:"output_path"`
	RawRows       int                  `json:"raw_rows"`
	Clean         cleaning.CleanReport `json:"clean"`
	FilteredOut   int                  `json:"filtered_out"`
	Days          int                  `json:"days"`
	WarmupDropped int                  `json:"warmup_dropped"`
	FeatureRows   int                  `json:"feature_rows"`
	Persisted     bool                 `json:"persisted"`
	StartedAt     time.Time            `json:"started_at"`
	Duration      time.Duration        `json:"duration"`
}

type Runner struct {
	reader     TransactionReader
	writer     FeatureWriter
	repository FeatureRepository
	defaults   Options
}

// NewRunner monta o pipeline. repository pode ser nil quando a gravação em banco está desligada.
func NewRunner(reader TransactionReader, writer FeatureWriter, repository FeatureRepository, defaults Options) *Runner {
	return &Runner{
		reader:     reader,
		writer:     writer,
		repository: repository,
		defaults:   defaults,
	}
}

// RunDefault executa com as opções de configuração
func (r *Runner) RunDefault(ctx context.Context) (*Report, error) {
	return r.Run(ctx, r.defaults)
}

// Run executa leitura, limpeza, agregação, síntese e gravação, nessa ordem.
// Campos vazios em opts herdam os valores padrão do Runner.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	opts = r.merge(opts)
	if opts.InputPath == "" || opts.OutputPath == "" {
		return nil, fmt.Errorf("%w: caminhos de entrada e saída são obrigatórios", domain.ErrPipelineFatal)
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"input":  opts.InputPath,
		"output": opts.OutputPath,
	})

	report := &Report{
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		StartedAt:  time.Now(),
	}

	aggregator, err := aggregating.NewAggregator(opts.GapPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPipelineFatal, err)
	}

	logger.Info("Iniciando pipeline de features")

	raw, err := r.reader.Read(ctx, opts.InputPath)
	if err != nil {
		return nil, err
	}
	report.RawRows = len(raw)

	records, cleanReport := cleaning.NewCleaner(cleaning.Options{
		RequireCustomerID: opts.RequireCustomerID,
	}).Clean(ctx, raw)
	report.Clean = cleanReport

	if opts.Country != "" {
		before := len(records)
		records = filterCountry(records, opts.Country)
		report.FilteredOut = before - len(records)
	}

	series := aggregator.Aggregate(ctx, records)
	report.Days = len(series)

	result, err := featuring.Synthesize(ctx, series)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPipelineFatal, err)
	}
	report.WarmupDropped = result.WarmupDropped
	report.FeatureRows = len(result.Rows)

	// o banco vem antes: se a transação falhar o CSV anterior continua valendo
	if r.repository != nil {
		if err := r.repository.SaveOrUpdate(ctx, opts.Country, result.Rows); err != nil {
			return nil, fmt.Errorf("erro ao gravar features no banco: %w", err)
		}
		report.Persisted = true
	}

	if err := r.writer.Write(ctx, opts.OutputPath, result.Rows); err != nil {
		return nil, fmt.Errorf("erro ao gravar tabela de features: %w", err)
	}

	report.Duration = time.Since(report.StartedAt)

	logger.WithFields(log.Fields{
		"raw_rows":       report.RawRows,
		"retained":       report.Clean.Retained,
		"days":           report.Days,
		"warmup_dropped": report.WarmupDropped,
		"rows":           report.FeatureRows,
		"duration_ms":    report.Duration.Milliseconds(),
	}).Info("Pipeline de features concluído")

	return report, nil
}

func (r *Runner) merge(opts Options) Options {
	if opts.InputPath == "" {
		opts.InputPath = r.defaults.InputPath
	}
	if opts.OutputPath == "" {
		opts.OutputPath = r.defaults.OutputPath
	}
	if opts.GapPolicy == "" {
		opts.GapPolicy = r.defaults.GapPolicy
	}
	if !opts.RequireCustomerID {
		opts.RequireCustomerID = r.defaults.RequireCustomerID
	}
	if opts.Country == "" {
		opts.Country = r.defaults.Country
	}
	return opts
}

func filterCountry(records []domain.TransactionRecord, country string) []domain.TransactionRecord {
	out := records[:0]
	for _, rec := range records {
		if strings.EqualFold(rec.Country, country) {
			out = append(out, rec)
		}
	}
	return out
}
