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

var _ repository.DeliveryPointRepository = (*DeliveryPointRepo)(nil)

var deliveryPointWrite = naturalKeyWrite{
	table:     "delivery_points",
	key:       "address",
	columns:   []string{"id", "address", "created_at"},
	returning: "id, address, created_at",
}

// DeliveryPointRepo puntos de entrega sobre PostgreSQL.
type DeliveryPointRepo struct {
	q Querier
}

// NewDeliveryPointRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryPointRepository(q Querier) *DeliveryPointRepo {
	return &DeliveryPointRepo{q: q}
}

// FindOrCreate crea el punto por dirección exacta si no existe.
func (r *DeliveryPointRepo) FindOrCreate(ctx context.Context, address string) (*entity.DeliveryPoint, bool, error) {
	var dp entity.DeliveryPoint
	created, err := deliveryPointWrite.save(ctx, r.q, repository.CreateIfAbsent,
		[]any{uuid.NewString(), address, time.Now()},
		&dp.ID, &dp.Address, &dp.CreatedAt,
	)
	if err != nil {
		return nil, false, err
	}
	return &dp, created, nil
}

// FindFirstContaining busca por subcadena sensible a mayúsculas; strpos evita escapar % y _.
func (r *DeliveryPointRepo) FindFirstContaining(ctx context.Context, fragment string) (*entity.DeliveryPoint, error) {
	query := `
		SELECT id, address, created_at
		FROM delivery_points
		WHERE strpos(address, $1) > 0
		ORDER BY seq
		LIMIT 1`
	var dp entity.DeliveryPoint
	err := r.q.QueryRow(ctx, query, fragment).Scan(&dp.ID, &dp.Address, &dp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find delivery point: %w", err)
	}
	return &dp, nil
}

// List lista los puntos en orden de almacenamiento.
func (r *DeliveryPointRepo) List(ctx context.Context) ([]*entity.DeliveryPoint, error) {
	rows, err := r.q.Query(ctx, `SELECT id, address, created_at FROM delivery_points ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list delivery points: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryPoint
	for rows.Next() {
		var dp entity.DeliveryPoint
		if err := rows.Scan(&dp.ID, &dp.Address, &dp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery point: %w", err)
		}
		list = append(list, &dp)
	}
	return list, rows.Err()
}
