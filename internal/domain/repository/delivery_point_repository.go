package repository

import (
	"context"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
)

// DeliveryPointRepository puerto de persistencia para puntos de entrega.
type DeliveryPointRepository interface {
	FindOrCreate(ctx context.Context, address string) (*entity.DeliveryPoint, bool, error)
	// FindFirstContaining devuelve el primer punto (orden de almacenamiento) cuya dirección
	// contiene fragment como subcadena, o nil, nil si ninguno coincide.
	FindFirstContaining(ctx context.Context, fragment string) (*entity.DeliveryPoint, error)
	List(ctx context.Context) ([]*entity.DeliveryPoint, error)
}
