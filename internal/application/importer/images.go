package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// productImagesPrefix carpeta de imágenes dentro del almacenamiento gestionado.
const productImagesPrefix = "products"

// ImageRelocator copia fotos desde la carpeta de staging al almacenamiento gestionado.
type ImageRelocator struct {
	sourceDir string
	storage   FileStorage
}

// NewImageRelocator construye el relocalizador.
func NewImageRelocator(sourceDir string, storage FileStorage) *ImageRelocator {
	return &ImageRelocator{sourceDir: sourceDir, storage: storage}
}

// Relocate copia sourceDir/name a products/<name> y devuelve esa ruta relativa.
// Si el archivo no existe devuelve "" sin error.
func (r *ImageRelocator) Relocate(ctx context.Context, name string) (string, error) {
	base := filepath.Base(filepath.Clean(name))
	if name == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", nil
	}
	src := filepath.Join(r.sourceDir, base)
	f, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("abrir imagen %s: %w", src, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat imagen %s: %w", src, err)
	}
	if info.IsDir() {
		return "", nil
	}

	key := path.Join(productImagesPrefix, base)
	if err := r.storage.Put(ctx, key, f, info.Size()); err != nil {
		return "", err
	}
	return key, nil
}
