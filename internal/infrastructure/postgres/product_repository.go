package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, article, name, unit, price, discount, stock, description, image_path,
		category_id, manufacturer_id, supplier_id, created_at, updated_at`

// image_path no está en updatable: sólo SetImageIfEmpty la escribe.
var productWrite = naturalKeyWrite{
	table: "products",
	key:   "article",
	columns: []string{
		"id", "article", "name", "unit", "price", "discount", "stock", "description",
		"category_id", "manufacturer_id", "supplier_id", "created_at", "updated_at",
	},
	updatable: []string{
		"name", "unit", "price", "discount", "stock", "description",
		"category_id", "manufacturer_id", "supplier_id", "updated_at",
	},
	returning: productColumns,
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Save guarda el producto por artículo según la política.
func (r *ProductRepo) Save(ctx context.Context, p *entity.Product, policy repository.WritePolicy) (*entity.Product, bool, error) {
	now := time.Now()
	var out entity.Product
	created, err := productWrite.save(ctx, r.q, policy,
		[]any{
			uuid.NewString(), p.Article, p.Name, p.Unit, p.Price, p.Discount, p.Stock, p.Description,
			p.CategoryID, p.ManufacturerID, p.SupplierID, now, now,
		},
		productDest(&out)...,
	)
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// GetByArticle obtiene un producto por artículo.
func (r *ProductRepo) GetByArticle(ctx context.Context, article string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE article = $1`, article).Scan(productDest(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// SetImageIfEmpty asigna la imagen sólo si image_path sigue vacío.
func (r *ProductRepo) SetImageIfEmpty(ctx context.Context, productID, imagePath string) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE products SET image_path = $2, updated_at = now()
		WHERE id = $1 AND image_path = ''`, productID, imagePath)
	if err != nil {
		return false, fmt.Errorf("set product image: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List lista productos en orden de creación.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(productDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func productDest(p *entity.Product) []any {
	return []any{
		&p.ID, &p.Article, &p.Name, &p.Unit, &p.Price, &p.Discount, &p.Stock, &p.Description, &p.ImagePath,
		&p.CategoryID, &p.ManufacturerID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	}
}
