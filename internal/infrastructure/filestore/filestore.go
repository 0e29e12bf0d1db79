package filestore

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/catalogo-tienda/pkg/config"
)

// Storage destino de las imágenes relocalizadas.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64) error
}

var (
	_ Storage = (*Local)(nil)
	_ Storage = (*S3)(nil)
	_ Storage = Discard{}
)

// New elige el driver según STORAGE_DRIVER.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverLocal:
		return NewLocal(cfg.Import.MediaRoot)
	case config.StorageDriverS3:
		return NewS3(ctx, cfg.Storage)
	default:
		return nil, fmt.Errorf("filestore: driver desconocido %q", cfg.Storage.Driver)
	}
}

// Discard descarta el contenido; lo usa el modo --dry-run.
type Discard struct{}

// Put consume r sin guardarlo.
func (Discard) Put(_ context.Context, _ string, r io.Reader, _ int64) error {
	_, err := io.Copy(io.Discard, r)
	return err
}
