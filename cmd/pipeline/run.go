package main

import (
	"fmt"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/ingestion"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/repository"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/storage/featuretable"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/pipeline"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func runCmd() *cobra.Command {
	var (
		input           string
		output          string
		gapPolicy       string
		country         string
		requireCustomer bool
		persist         bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Lê o export de transações e gera a tabela de features",
		Long: `Executa limpeza, agregação diária e síntese de features, gravando o CSV
no caminho de saída. Flags não informadas herdam a configuração (.env).

Exemplos:
  pipeline run --input data/raw/online_retail.csv --output data/processed/features.csv
  pipeline run --gap-policy zero_fill --country "United Kingdom"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := log.Setup(cfg.App.LogLevel); err != nil {
				return err
			}

			policy := domain.GapPolicy(gapPolicy)
			if gapPolicy != "" && !policy.IsValid() {
				return fmt.Errorf("--gap-policy inválido: %q (use preserve ou zero_fill)", gapPolicy)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var featureRepo pipeline.FeatureRepository
			if persist || cfg.Features.DBEnabled {
				db, err := database.Open(ctx, cfg)
				if err != nil {
					return err
				}
				defer db.Conn.Close()
				featureRepo = repository.NewDailyFeatureRepository(db.Conn, db.Format)
			}

			runner := pipeline.NewRunner(
				ingestion.NewCSVReader(),
				featuretable.NewWriter(),
				featureRepo,
				pipeline.OptionsFromConfig(cfg),
			)

			report, err := runner.Run(ctx, pipeline.Options{
				InputPath:         input,
				OutputPath:        output,
				GapPolicy:         policy,
				RequireCustomerID: requireCustomer,
				Country:           country,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd, report)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV de transações (padrão: RAW_DATA_FILE)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV de features gerado (padrão: FEATURES_FILE)")
	cmd.Flags().StringVar(&gapPolicy, "gap-policy", "", "tratamento de dias sem vendas: preserve ou zero_fill (padrão: GAP_POLICY)")
	cmd.Flags().StringVar(&country, "country", "", "restringe as vendas a um país do export")
	cmd.Flags().BoolVar(&requireCustomer, "require-customer", false, "descarta vendas sem CustomerID")
	cmd.Flags().BoolVar(&persist, "persist", false, "grava também na tabela daily_features")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

