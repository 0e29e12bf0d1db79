package repository

import (
	"context"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	// Save guarda por Article según policy. Con Upsert se sobrescriben todos los campos
	// salvo ImagePath. Devuelve el registro almacenado y si fue creado.
	Save(ctx context.Context, product *entity.Product, policy WritePolicy) (*entity.Product, bool, error)
	GetByArticle(ctx context.Context, article string) (*entity.Product, error)
	// SetImageIfEmpty asigna la imagen sólo si el producto aún no tiene una.
	SetImageIfEmpty(ctx context.Context, productID, imagePath string) (bool, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
