package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/postgres"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes del esquema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, a.cfg.DB)
			if err != nil {
				a.log.Error().Err(err).Msg("conexión a PostgreSQL")
				return err
			}
			defer pool.Close()

			if err := postgres.Migrate(ctx, pool); err != nil {
				a.log.Error().Err(err).Msg("migraciones")
				return err
			}
			a.log.Info().Msg("migraciones aplicadas")
			return nil
		},
	}
}
