package repository

import (
	"context"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
)

// RoleRepository puerto de persistencia para roles.
type RoleRepository interface {
	FindOrCreate(ctx context.Context, name entity.RoleName) (*entity.Role, bool, error)
	// GetByName devuelve nil, nil si el rol no existe.
	GetByName(ctx context.Context, name entity.RoleName) (*entity.Role, error)
}
