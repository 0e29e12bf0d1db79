package repository

import (
	"context"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User, policy WritePolicy) (*entity.User, bool, error)
	// GetByUsername devuelve nil, nil si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
