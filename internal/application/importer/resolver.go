package importer

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

// RefKind tipo de entidad de referencia.
type RefKind string

// Referencias que se resuelven por clave natural.
const (
	RefCategory      RefKind = "category"
	RefManufacturer  RefKind = "manufacturer"
	RefSupplier      RefKind = "supplier"
	RefRole          RefKind = "role"
	RefDeliveryPoint RefKind = "delivery_point"
)

// ResolveOrCreate busca la referencia por clave exacta y la crea si falta, en un solo
// paso atómico del almacén. Devuelve el ID y si fue creada.
func ResolveOrCreate(ctx context.Context, repos repository.Store, kind RefKind, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("%s: clave vacía: %w", kind, domain.ErrInvalidInput)
	}
	switch kind {
	case RefCategory, RefManufacturer, RefSupplier:
		d, created, err := repos.Dimensions.FindOrCreate(ctx, dimensionKind(kind), key)
		if err != nil {
			return "", false, err
		}
		return d.ID, created, nil
	case RefRole:
		r, created, err := repos.Roles.FindOrCreate(ctx, entity.RoleName(key))
		if err != nil {
			return "", false, err
		}
		return r.ID, created, nil
	case RefDeliveryPoint:
		dp, created, err := repos.DeliveryPoints.FindOrCreate(ctx, key)
		if err != nil {
			return "", false, err
		}
		return dp.ID, created, nil
	default:
		return "", false, fmt.Errorf("referencia %q: %w", kind, domain.ErrInvalidInput)
	}
}

func dimensionKind(kind RefKind) entity.DimensionKind {
	switch kind {
	case RefManufacturer:
		return entity.KindManufacturer
	case RefSupplier:
		return entity.KindSupplier
	default:
		return entity.KindCategory
	}
}
