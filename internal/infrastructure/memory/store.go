// Package memory implementa los puertos de persistencia en memoria.
// Se usa en modo --dry-run y en los tests del pipeline.
package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

// Store almacén en memoria protegido por un único mutex, de modo que cada
// find-or-insert es atómico.
type Store struct {
	mu             sync.Mutex
	now            func() time.Time
	dimensions     map[entity.DimensionKind]*table[entity.Dimension]
	roles          *table[entity.Role]
	deliveryPoints *table[entity.DeliveryPoint]
	products       *table[entity.Product]
	users          *table[entity.User]
	orders         *table[entity.Order]
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		now: time.Now,
		dimensions: map[entity.DimensionKind]*table[entity.Dimension]{
			entity.KindCategory:     newTable[entity.Dimension](),
			entity.KindManufacturer: newTable[entity.Dimension](),
			entity.KindSupplier:     newTable[entity.Dimension](),
		},
		roles:          newTable[entity.Role](),
		deliveryPoints: newTable[entity.DeliveryPoint](),
		products:       newTable[entity.Product](),
		users:          newTable[entity.User](),
		orders:         newTable[entity.Order](),
	}
}

// Repositories expone el almacén como conjunto de puertos.
func (s *Store) Repositories() repository.Store {
	return repository.Store{
		Dimensions:     dimensionRepo{s},
		Roles:          roleRepo{s},
		DeliveryPoints: deliveryPointRepo{s},
		Products:       productRepo{s},
		Users:          userRepo{s},
		Orders:         orderRepo{s},
	}
}

// Run ejecuta fn sobre los mismos repositorios. No hay rollback: cada escritura
// es definitiva, igual que una fila confirmada.
func (s *Store) Run(_ context.Context, fn func(repos repository.Store) error) error {
	return fn(s.Repositories())
}

var (
	_ repository.DimensionRepository     = dimensionRepo{}
	_ repository.RoleRepository          = roleRepo{}
	_ repository.DeliveryPointRepository = deliveryPointRepo{}
	_ repository.ProductRepository       = productRepo{}
	_ repository.UserRepository          = userRepo{}
	_ repository.OrderRepository         = orderRepo{}
)

type dimensionRepo struct{ s *Store }

func (r dimensionRepo) FindOrCreate(_ context.Context, kind entity.DimensionKind, name string) (*entity.Dimension, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.dimensions[kind]
	if !ok {
		return nil, false, errUnknownKind(kind)
	}
	d, created := t.save(name, &entity.Dimension{
		ID: uuid.NewString(), Kind: kind, Name: name, CreatedAt: r.s.now(),
	}, repository.CreateIfAbsent, nil)
	return d, created, nil
}

func (r dimensionRepo) ListByKind(_ context.Context, kind entity.DimensionKind) ([]*entity.Dimension, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.dimensions[kind]
	if !ok {
		return nil, errUnknownKind(kind)
	}
	return t.list(), nil
}

type roleRepo struct{ s *Store }

func (r roleRepo) FindOrCreate(_ context.Context, name entity.RoleName) (*entity.Role, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, created := r.s.roles.save(string(name), &entity.Role{ID: uuid.NewString(), Name: name}, repository.CreateIfAbsent, nil)
	return role, created, nil
}

func (r roleRepo) GetByName(_ context.Context, name entity.RoleName) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.roles.get(string(name)), nil
}

type deliveryPointRepo struct{ s *Store }

func (r deliveryPointRepo) FindOrCreate(_ context.Context, address string) (*entity.DeliveryPoint, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	dp, created := r.s.deliveryPoints.save(address, &entity.DeliveryPoint{
		ID: uuid.NewString(), Address: address, CreatedAt: r.s.now(),
	}, repository.CreateIfAbsent, nil)
	return dp, created, nil
}

func (r deliveryPointRepo) FindFirstContaining(_ context.Context, fragment string) (*entity.DeliveryPoint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var found *entity.DeliveryPoint
	r.s.deliveryPoints.each(func(dp *entity.DeliveryPoint) bool {
		if strings.Contains(dp.Address, fragment) {
			cp := *dp
			found = &cp
			return false
		}
		return true
	})
	return found, nil
}

func (r deliveryPointRepo) List(_ context.Context) ([]*entity.DeliveryPoint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.deliveryPoints.list(), nil
}

type productRepo struct{ s *Store }

func (r productRepo) Save(_ context.Context, p *entity.Product, policy repository.WritePolicy) (*entity.Product, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	in := *p
	in.ID = uuid.NewString()
	in.CreatedAt, in.UpdatedAt = now, now
	saved, created := r.s.products.save(p.Article, &in, policy, func(dst, src *entity.Product) {
		dst.Name = src.Name
		dst.Unit = src.Unit
		dst.Price = src.Price
		dst.Discount = src.Discount
		dst.Stock = src.Stock
		dst.Description = src.Description
		dst.CategoryID = src.CategoryID
		dst.ManufacturerID = src.ManufacturerID
		dst.SupplierID = src.SupplierID
		dst.UpdatedAt = src.UpdatedAt
	})
	return saved, created, nil
}

func (r productRepo) GetByArticle(_ context.Context, article string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products.get(article), nil
}

func (r productRepo) SetImageIfEmpty(_ context.Context, productID, imagePath string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	updated := false
	r.s.products.each(func(p *entity.Product) bool {
		if p.ID != productID {
			return true
		}
		if p.ImagePath == "" {
			p.ImagePath = imagePath
			p.UpdatedAt = r.s.now()
			updated = true
		}
		return false
	})
	return updated, nil
}

func (r productRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products.list(), nil
}

type userRepo struct{ s *Store }

func (r userRepo) Save(_ context.Context, u *entity.User, policy repository.WritePolicy) (*entity.User, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	in := *u
	in.ID = uuid.NewString()
	in.CreatedAt, in.UpdatedAt = now, now
	saved, created := r.s.users.save(u.Username, &in, policy, func(dst, src *entity.User) {
		dst.FullName = src.FullName
		dst.RoleID = src.RoleID
		dst.Role = src.Role
		dst.PasswordHash = src.PasswordHash
		dst.UpdatedAt = src.UpdatedAt
	})
	return saved, created, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users.get(username), nil
}

func (r userRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users.list(), nil
}

type orderRepo struct{ s *Store }

func (r orderRepo) Save(_ context.Context, o *entity.Order, policy repository.WritePolicy) (*entity.Order, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in := *o
	in.ID = uuid.NewString()
	in.CreatedAt = r.s.now()
	saved, created := r.s.orders.save(strconv.Itoa(o.Number), &in, policy, func(dst, src *entity.Order) {
		dst.Article = src.Article
		dst.OrderDate = src.OrderDate
		dst.DeliveryDate = src.DeliveryDate
		dst.ClientName = src.ClientName
		dst.PickupCode = src.PickupCode
		dst.Status = src.Status
		dst.DeliveryPointID = src.DeliveryPointID
	})
	return saved, created, nil
}

func (r orderRepo) GetByNumber(_ context.Context, number int) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.orders.get(strconv.Itoa(number)), nil
}

func (r orderRepo) List(_ context.Context) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.orders.list(), nil
}
