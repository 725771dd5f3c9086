package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas prediction_metrics e daily_features no banco configurado",
		Long: `Conecta no banco do METRICS_BACKEND (sqlite ou postgres; "file" usa o
Postgres de DATABASE_*) e aplica o schema. Pode ser executado várias vezes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := log.Setup(cfg.App.LogLevel); err != nil {
				return err
			}

			db, err := database.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Conn.Close()

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema aplicado (%s)\n", db.Driver)
			return err
		},
	}
}
