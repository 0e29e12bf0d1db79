package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/catalogo-tienda/pkg/logger"
)

// Options directorios de una ejecución.
type Options struct {
	Path       string // carpeta con los libros
	ImagesPath string // carpeta con las fotos; vacío = Path
	DryRun     bool   // sólo se informa en el reporte
}

// Orchestrator ejecuta la importación: siembra de roles y luego las cuatro hojas en orden.
type Orchestrator struct {
	tx      TxRunner
	hasher  PasswordHasher
	storage FileStorage
	log     *logger.Logger
	now     func() time.Time
}

// NewOrchestrator construye el orquestador.
func NewOrchestrator(tx TxRunner, hasher PasswordHasher, storage FileStorage, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{tx: tx, hasher: hasher, storage: storage, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (fecha de hoy para pedidos sin fecha válida).
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// stage hoja a importar.
type stage struct {
	sheet    string
	file     string
	noHeader bool
	row      func(ctx context.Context, st *stageRun, repos repository.Store, row spreadsheet.Row) (rowOutcome, error)
}

type rowOutcome int

const (
	rowWritten rowOutcome = iota
	rowCreated
	rowSkipped
)

// stageRun estado de una hoja en curso.
type stageRun struct {
	report *StageReport
	log    *logger.Logger
	images *ImageRelocator
}

// warn cuenta la advertencia en el reporte y abre el evento de log.
func (s *stageRun) warn(row spreadsheet.Row) *zerolog.Event {
	s.report.Warnings++
	return s.log.Warn().Int("row", row.Number)
}

// Run ejecuta la importación completa. Sólo devuelve error ante fallos fatales:
// directorio inválido, siembra imposible o contexto cancelado.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Report, error) {
	report := &Report{StartedAt: o.now(), DryRun: opts.DryRun}
	defer func() { report.Duration = time.Since(report.StartedAt) }()

	if err := checkDir(opts.Path); err != nil {
		return report, err
	}
	imagesPath := opts.ImagesPath
	if imagesPath == "" {
		imagesPath = opts.Path
	}
	images := NewImageRelocator(imagesPath, o.storage)

	o.log.Info().Str("path", opts.Path).Str("images_path", imagesPath).Bool("dry_run", opts.DryRun).Msg("importación iniciada")

	if err := o.SeedRoles(ctx); err != nil {
		return report, err
	}
	if err := o.EnsureGuest(ctx); err != nil {
		return report, err
	}

	report.Success = true
	for _, st := range o.stages() {
		sr := o.runStage(ctx, st, opts.Path, images)
		report.Stages = append(report.Stages, sr)
		if sr.Error != "" {
			report.Success = false
		}
		if err := ctx.Err(); err != nil {
			report.Success = false
			return report, err
		}
	}

	o.log.Info().Bool("success", report.Success).Dur("duration", time.Since(report.StartedAt)).Msg("importación finalizada")
	return report, nil
}

func (o *Orchestrator) stages() []stage {
	return []stage{
		{sheet: SheetDeliveryPoints, file: FileDeliveryPoints, noHeader: true, row: o.importDeliveryPoint},
		{sheet: SheetProducts, file: FileProducts, row: o.importProduct},
		{sheet: SheetUsers, file: FileUsers, row: o.importUser},
		{sheet: SheetOrders, file: FileOrders, row: o.importOrder},
	}
}

// SeedRoles crea los roles fijos en una transacción antes de cualquier hoja.
func (o *Orchestrator) SeedRoles(ctx context.Context) error {
	err := o.tx.Run(ctx, func(repos repository.Store) error {
		for _, name := range entity.SeedRoles {
			_, created, err := ResolveOrCreate(ctx, repos, RefRole, string(name))
			if err != nil {
				return err
			}
			if created {
				o.log.Info().Str("role", string(name)).Str("title", name.DisplayName()).Msg("rol creado")
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sembrar roles: %w", err)
	}
	return nil
}

// EnsureGuest crea el usuario invitado (rol cliente, sin contraseña utilizable) si no existe.
func (o *Orchestrator) EnsureGuest(ctx context.Context) error {
	err := o.tx.Run(ctx, func(repos repository.Store) error {
		role, err := repos.Roles.GetByName(ctx, entity.RoleClient)
		if err != nil {
			return err
		}
		if role == nil {
			return domain.ErrRoleNotSeeded
		}
		_, created, err := upserter{repos}.user(ctx, &entity.User{
			Username: entity.GuestUsername,
			FullName: "Гость",
			RoleID:   role.ID,
			Role:     role.Name,
		})
		if err != nil {
			return err
		}
		if created {
			o.log.Info().Str("username", entity.GuestUsername).Msg("usuario invitado creado")
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("usuario invitado: %w", err)
	}
	return nil
}

func (o *Orchestrator) runStage(ctx context.Context, st stage, dir string, images *ImageRelocator) StageReport {
	sr := StageReport{Sheet: st.sheet}
	log := o.log.Sheet(st.sheet)

	path, err := spreadsheet.Locate(dir, st.file)
	if err != nil {
		if errors.Is(err, domain.ErrSheetNotFound) {
			sr.SkippedFile = true
			log.Info().Str("file", st.file).Msg("archivo no encontrado, hoja omitida")
			return sr
		}
		sr.Error = err.Error()
		log.Error().Err(err).Msg("no se pudo localizar la hoja")
		return sr
	}
	sr.File = path

	sheet, err := spreadsheet.Open(path, spreadsheet.Options{NoHeader: st.noHeader})
	if errors.Is(err, domain.ErrEmptySheet) {
		log.Warn().Str("file", path).Msg("archivo vacío, nada que importar")
		return sr
	}
	if err != nil {
		sr.Error = err.Error()
		log.Error().Err(err).Str("file", path).Msg("no se pudo leer la hoja")
		return sr
	}

	run := &stageRun{report: &sr, log: log, images: images}
	for _, row := range sheet.Rows {
		if ctx.Err() != nil {
			sr.Error = ctx.Err().Error()
			break
		}
		if Text(row.At(0)) == "" {
			sr.Skipped++
			log.Debug().Int("row", row.Number).Msg("fila sin primera celda, omitida")
			continue
		}

		var outcome rowOutcome
		err := o.tx.Run(ctx, func(repos repository.Store) error {
			var err error
			outcome, err = st.row(ctx, run, repos, row)
			return err
		})
		switch {
		case err != nil:
			sr.Failed++
			log.Error().Err(err).Int("row", row.Number).Msg("fila no importada")
		case outcome == rowSkipped:
			sr.Skipped++
		case outcome == rowCreated:
			sr.Created++
			sr.Processed++
		default:
			sr.Processed++
		}
	}

	log.Info().
		Str("file", path).
		Int("rows", len(sheet.Rows)).
		Int("processed", sr.Processed).
		Int("created", sr.Created).
		Int("skipped", sr.Skipped).
		Int("failed", sr.Failed).
		Int("warnings", sr.Warnings).
		Msg("hoja importada")
	return sr
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("directorio de importación %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directorio de importación %q no es un directorio: %w", path, domain.ErrInvalidInput)
	}
	return nil
}

func written(created bool) rowOutcome {
	if created {
		return rowCreated
	}
	return rowWritten
}
