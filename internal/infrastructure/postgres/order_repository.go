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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, number, article, order_date, delivery_date, client_name, pickup_code, status,
		delivery_point_id, created_at`

var orderWrite = naturalKeyWrite{
	table: "orders",
	key:   "number",
	columns: []string{
		"id", "number", "article", "order_date", "delivery_date", "client_name", "pickup_code", "status",
		"delivery_point_id", "created_at",
	},
	updatable: []string{
		"article", "order_date", "delivery_date", "client_name", "pickup_code", "status", "delivery_point_id",
	},
	returning: orderColumns,
}

// OrderRepo pedidos sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Save guarda el pedido por número según la política.
func (r *OrderRepo) Save(ctx context.Context, o *entity.Order, policy repository.WritePolicy) (*entity.Order, bool, error) {
	var out orderRow
	created, err := orderWrite.save(ctx, r.q, policy,
		[]any{
			uuid.NewString(), o.Number, o.Article, o.OrderDate, o.DeliveryDate, o.ClientName, o.PickupCode,
			string(o.Status), nullable(o.DeliveryPointID), time.Now(),
		},
		out.dest()...,
	)
	if err != nil {
		return nil, false, err
	}
	return out.entity(), created, nil
}

// GetByNumber obtiene un pedido por número.
func (r *OrderRepo) GetByNumber(ctx context.Context, number int) (*entity.Order, error) {
	var row orderRow
	err := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE number = $1`, number).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return row.entity(), nil
}

// List lista pedidos por número.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, row.entity())
	}
	return list, rows.Err()
}

// orderRow columnas NULL-ables escaneadas a punteros.
type orderRow struct {
	o               entity.Order
	status          string
	deliveryPointID *string
}

func (r *orderRow) dest() []any {
	return []any{
		&r.o.ID, &r.o.Number, &r.o.Article, &r.o.OrderDate, &r.o.DeliveryDate, &r.o.ClientName,
		&r.o.PickupCode, &r.status, &r.deliveryPointID, &r.o.CreatedAt,
	}
}

func (r *orderRow) entity() *entity.Order {
	o := r.o
	o.Status = entity.OrderStatus(r.status)
	o.DeliveryPointID = deref(r.deliveryPointID)
	return &o
}
