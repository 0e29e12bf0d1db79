package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

var _ repository.DimensionRepository = (*DimensionRepo)(nil)

// dimensionTables tabla por tipo de dimensión; nunca se arma SQL con texto de la hoja.
var dimensionTables = map[entity.DimensionKind]string{
	entity.KindCategory:     "categories",
	entity.KindManufacturer: "manufacturers",
	entity.KindSupplier:     "suppliers",
}

// DimensionRepo categorías, fabricantes y proveedores sobre PostgreSQL.
type DimensionRepo struct {
	q Querier
}

// NewDimensionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDimensionRepository(q Querier) *DimensionRepo {
	return &DimensionRepo{q: q}
}

// FindOrCreate inserta el nombre si no existe y devuelve la fila en una sola sentencia.
func (r *DimensionRepo) FindOrCreate(ctx context.Context, kind entity.DimensionKind, name string) (*entity.Dimension, bool, error) {
	table, ok := dimensionTables[kind]
	if !ok {
		return nil, false, fmt.Errorf("dimensión %q: %w", kind, domain.ErrInvalidInput)
	}
	w := naturalKeyWrite{
		table:     table,
		key:       "name",
		columns:   []string{"id", "name", "created_at"},
		returning: "id, name, created_at",
	}
	d := entity.Dimension{Kind: kind}
	created, err := w.save(ctx, r.q, repository.CreateIfAbsent,
		[]any{uuid.NewString(), name, time.Now()},
		&d.ID, &d.Name, &d.CreatedAt,
	)
	if err != nil {
		return nil, false, err
	}
	return &d, created, nil
}

// ListByKind lista las filas de una dimensión por orden de creación.
func (r *DimensionRepo) ListByKind(ctx context.Context, kind entity.DimensionKind) ([]*entity.Dimension, error) {
	table, ok := dimensionTables[kind]
	if !ok {
		return nil, fmt.Errorf("dimensión %q: %w", kind, domain.ErrInvalidInput)
	}
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM `+table+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	var list []*entity.Dimension
	for rows.Next() {
		d := entity.Dimension{Kind: kind}
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
