package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/internal/usecases/authenticating"
)

func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso para as rotas /v1/cron",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg).GenerateToken(subject, role, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "ops", "identificação de quem usará o token")
	cmd.Flags().StringVar(&role, "role", domain.RoleAdmin, "papel: admin ou operator")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")

	return cmd
}
