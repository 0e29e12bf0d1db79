package entity

import "time"

// DeliveryPoint punto de entrega (clave natural: Address exacta).
type DeliveryPoint struct {
	ID        string
	Address   string
	CreatedAt time.Time
}
