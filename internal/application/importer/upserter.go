package importer

import (
	"context"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

// Política de escritura por entidad. Los puntos de entrega sólo tienen clave
// (FindOrCreate ya es create-if-absent).
const (
	productPolicy = repository.Upsert
	userPolicy    = repository.CreateIfAbsent
	orderPolicy   = repository.CreateIfAbsent
)

// upserter aplica la política de cada entidad sobre el primitivo Save del almacén.
type upserter struct {
	repos repository.Store
}

func (u upserter) deliveryPoint(ctx context.Context, address string) (*entity.DeliveryPoint, bool, error) {
	return u.repos.DeliveryPoints.FindOrCreate(ctx, address)
}

func (u upserter) product(ctx context.Context, p *entity.Product) (*entity.Product, bool, error) {
	return u.repos.Products.Save(ctx, p, productPolicy)
}

func (u upserter) user(ctx context.Context, usr *entity.User) (*entity.User, bool, error) {
	return u.repos.Users.Save(ctx, usr, userPolicy)
}

func (u upserter) order(ctx context.Context, o *entity.Order) (*entity.Order, bool, error) {
	return u.repos.Orders.Save(ctx, o, orderPolicy)
}
