package repository

import (
	"context"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
)

// DimensionRepository puerto de persistencia para categorías, fabricantes y proveedores.
type DimensionRepository interface {
	// FindOrCreate busca por nombre exacto y, si no existe, lo crea de forma atómica.
	FindOrCreate(ctx context.Context, kind entity.DimensionKind, name string) (*entity.Dimension, bool, error)
	ListByKind(ctx context.Context, kind entity.DimensionKind) ([]*entity.Dimension, error)
}
