package repository

import (
	"context"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
)

// OrderRepository puerto de persistencia para Order.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order, policy WritePolicy) (*entity.Order, bool, error)
	GetByNumber(ctx context.Context, number int) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
}
