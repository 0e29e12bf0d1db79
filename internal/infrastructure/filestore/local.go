package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
)

// Local guarda archivos bajo un directorio raíz (MEDIA_ROOT).
type Local struct {
	root string
}

// NewLocal construye el almacenamiento en disco. Crea la raíz si no existe.
func NewLocal(root string) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("filestore: raíz vacía: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: crear raíz %s: %w", root, err)
	}
	return &Local{root: root}, nil
}

// Put escribe r en root/key, reemplazando el archivo si ya existe.
func (l *Local) Put(ctx context.Context, key string, r io.Reader, _ int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("filestore: crear directorio: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("filestore: archivo temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: copiar %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("filestore: mover %s: %w", key, err)
	}
	return nil
}

// path resuelve la clave dentro de root; rechaza claves que escapen de la raíz.
func (l *Local) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || clean == ".." {
		return "", fmt.Errorf("filestore: clave %q: %w", key, domain.ErrInvalidInput)
	}
	return filepath.Join(l.root, clean), nil
}
