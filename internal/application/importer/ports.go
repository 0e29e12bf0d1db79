package importer

import (
	"context"
	"io"

	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una transacción; error en fn revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Store) error) error
}

// PasswordHasher hashea contraseñas de usuarios importados.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// FileStorage almacenamiento gestionado de imágenes (disco o S3).
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64) error
}
