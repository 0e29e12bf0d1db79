package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/catalogo-tienda/internal/application/auth"
	"github.com/jhoicas/catalogo-tienda/internal/application/importer"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/filestore"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/postgres"
)

type runOptions struct {
	path       string
	imagesPath string
	mediaRoot  string
	dryRun     bool
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ejecuta la importación de las cuatro hojas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.path, "path", "", "carpeta con los archivos Excel (por defecto IMPORT_PATH o .)")
	cmd.Flags().StringVar(&opts.imagesPath, "images-path", "", "carpeta con las fotos de productos (por defecto --path)")
	cmd.Flags().StringVar(&opts.mediaRoot, "media-root", "", "raíz del almacenamiento local (por defecto MEDIA_ROOT)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "importa en memoria sin tocar la base ni el almacenamiento")
	return cmd
}

func (a *app) run(cmd *cobra.Command, opts runOptions) error {
	ctx := cmd.Context()
	cfg := a.cfg
	if opts.path != "" {
		cfg.Import.Path = opts.path
	}
	if opts.imagesPath != "" {
		cfg.Import.ImagesPath = opts.imagesPath
	}
	if opts.mediaRoot != "" {
		cfg.Import.MediaRoot = opts.mediaRoot
	}
	if err := cfg.Validate(); err != nil {
		a.log.Error().Err(err).Msg("configuración inválida")
		return err
	}

	var (
		tx      importer.TxRunner
		storage filestore.Storage
	)
	if opts.dryRun {
		tx = memory.NewStore()
		storage = filestore.Discard{}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			a.log.Error().Err(err).Msg("conexión a PostgreSQL")
			return err
		}
		defer pool.Close()
		tx = postgres.NewTxRunner(pool)

		storage, err = filestore.New(ctx, cfg)
		if err != nil {
			a.log.Error().Err(err).Msg("almacenamiento de imágenes")
			return err
		}
	}

	orch := importer.NewOrchestrator(tx, auth.NewBcryptHasher(0), storage, a.log)
	report, err := orch.Run(ctx, importer.Options{
		Path:       cfg.Import.Path,
		ImagesPath: cfg.Import.ResolvedImagesPath(),
		DryRun:     opts.dryRun,
	})
	if err != nil {
		a.log.Error().Err(err).Msg("importación abortada")
		return err
	}
	if !report.Success {
		a.log.Warn().Msg("importación finalizada con hojas fallidas")
	}
	return nil
}
