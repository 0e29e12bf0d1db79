package entity

import "time"

// OrderStatus estado del pedido.
type OrderStatus string

// Estados válidos de pedido.
const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order pedido (clave natural: Number).
type Order struct {
	ID              string
	Number          int
	Article         string // texto libre: artículos y cantidades tal como vienen en la hoja
	OrderDate       time.Time
	DeliveryDate    *time.Time
	ClientName      string
	PickupCode      string
	Status          OrderStatus
	DeliveryPointID string // vacío si no se pudo resolver
	CreatedAt       time.Time
}
