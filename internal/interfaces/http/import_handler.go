package http

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-tienda/internal/application/dto"
	"github.com/jhoicas/catalogo-tienda/internal/application/importer"
	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/pkg/logger"
)

// Importer ejecuta una importación; lo implementa *importer.Orchestrator.
type Importer interface {
	Run(ctx context.Context, opts importer.Options) (*importer.Report, error)
}

// ImportHandler dispara la importación sobre los directorios configurados.
// Sólo una importación a la vez por proceso.
type ImportHandler struct {
	importer Importer
	opts     importer.Options
	log      *logger.Logger
	mu       sync.Mutex
}

// NewImportHandler construye el handler.
func NewImportHandler(imp Importer, opts importer.Options, log *logger.Logger) *ImportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ImportHandler{importer: imp, opts: opts, log: log}
}

// Run godoc
// @Summary      Ejecutar importación
// @Description  Importa puntos de entrega, productos, usuarios y pedidos desde los directorios configurados.
// @Tags         imports
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/imports [post]
func (h *ImportHandler) Run(c *fiber.Ctx) error {
	if !h.mu.TryLock() {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IMPORT_RUNNING", Message: "ya hay una importación en curso"})
	}
	defer h.mu.Unlock()

	h.log.Info().Str("username", GetUsername(c)).Str("role", GetRole(c)).Msg("importación solicitada por API")
	report, err := h.importer.Run(c.UserContext(), h.opts)
	if err != nil {
		h.log.Error().Err(err).Msg("importación fallida")
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, fs.ErrNotExist) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_IMPORT_PATH", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report.Response())
}
